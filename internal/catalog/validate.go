// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"fmt"
	"strings"
)

// =============================================================================
// VALIDATION
// =============================================================================

// FieldError is a problem with one field of the document.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is every problem found in a document, in document order.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

type validator struct {
	errs ValidationErrors
}

func (v *validator) fail(path, format string, args ...any) {
	v.errs = append(v.errs, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) required(path, value string) {
	if strings.TrimSpace(value) == "" {
		v.fail(path, "required")
	}
}

func (v *validator) nonEmpty(path string, values []string) {
	if len(values) == 0 {
		v.fail(path, "must not be empty")
		return
	}
	for i, s := range values {
		v.required(fmt.Sprintf("%s[%d]", path, i), s)
	}
}

// Validate checks that every field a command renders is present.
// It returns nil or a ValidationErrors.
func (c *Catalog) Validate() error {
	v := &validator{}

	v.required("personal.name", c.Personal.Name)
	v.required("personal.title", c.Personal.Title)
	v.required("personal.location", c.Personal.Location)
	v.required("personal.email", c.Personal.Email)
	v.required("personal.summary", c.Personal.Summary)

	if len(c.Skills) == 0 {
		v.fail("skills", "must not be empty")
	}
	seen := make(map[string]bool, len(c.Skills))
	for i, cat := range c.Skills {
		p := fmt.Sprintf("skills[%d]", i)
		v.required(p+".key", cat.Key)
		if seen[cat.Key] {
			v.fail(p+".key", "duplicate key %q", cat.Key)
		}
		seen[cat.Key] = true

		switch {
		case len(cat.Tags) > 0 && len(cat.Levels) > 0:
			v.fail(p, "has both tags and levels")
		case len(cat.Tags) == 0 && len(cat.Levels) == 0:
			v.fail(p, "needs tags or levels")
		}
		for j, t := range cat.Tags {
			v.required(fmt.Sprintf("%s.tags[%d]", p, j), t)
		}
		for j, l := range cat.Levels {
			lp := fmt.Sprintf("%s.levels[%d]", p, j)
			v.required(lp+".skill", l.Skill)
			if l.Level < 0 || l.Level > 100 {
				v.fail(lp+".level", "must be between 0 and 100, got %d", l.Level)
			}
		}
	}

	for i, p := range c.Projects {
		path := fmt.Sprintf("projects[%d]", i)
		v.required(path+".name", p.Name)
		v.required(path+".description", p.Description)
		v.nonEmpty(path+".technologies", p.Technologies)
	}

	for i, e := range c.Experience {
		path := fmt.Sprintf("experience[%d]", i)
		v.required(path+".position", e.Position)
		v.required(path+".company", e.Company)
		v.required(path+".duration", e.Duration)
		v.nonEmpty(path+".responsibilities", e.Responsibilities)
	}

	for i, e := range c.Education {
		path := fmt.Sprintf("education[%d]", i)
		v.required(path+".degree", e.Degree)
		v.required(path+".institution", e.Institution)
		v.required(path+".duration", e.Duration)
	}

	for i, a := range c.Achievements {
		path := fmt.Sprintf("achievements[%d]", i)
		v.required(path+".title", a.Title)
		v.required(path+".description", a.Description)
	}

	for i, r := range c.Research {
		path := fmt.Sprintf("research[%d]", i)
		v.required(path+".title", r.Title)
		v.required(path+".journal", r.Journal)
		v.required(path+".abstract", r.Abstract)
	}

	if len(c.Contact) == 0 {
		v.fail("contact", "must not be empty")
	}
	for i, ct := range c.Contact {
		path := fmt.Sprintf("contact[%d]", i)
		v.required(path+".type", ct.Type)
		v.required(path+".value", ct.Value)
	}

	v.required("readme.title", c.Readme.Title)

	if len(v.errs) > 0 {
		return v.errs
	}
	return nil
}
