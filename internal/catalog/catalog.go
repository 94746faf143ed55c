// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

// =============================================================================
// DOCUMENT
// =============================================================================

// Catalog is the complete portfolio document.
type Catalog struct {
	Personal     Personal        `yaml:"personal" json:"personal"`
	Skills       []SkillCategory `yaml:"skills" json:"skills"`
	Projects     []Project       `yaml:"projects" json:"projects"`
	Experience   []Experience    `yaml:"experience" json:"experience"`
	Education    []Education     `yaml:"education" json:"education"`
	Achievements []Achievement   `yaml:"achievements" json:"achievements"`
	Research     []Paper         `yaml:"research" json:"research"`
	Contact      []Contact       `yaml:"contact" json:"contact"`
	ContactBlurb string          `yaml:"contactBlurb" json:"contactBlurb"`
	Readme       Readme          `yaml:"readme" json:"readme"`
	Welcome      Welcome         `yaml:"welcome" json:"welcome"`
}

// Personal holds the biography fields.
type Personal struct {
	Name     string `yaml:"name" json:"name"`
	Title    string `yaml:"title" json:"title"`
	Location string `yaml:"location" json:"location"`
	Phone    string `yaml:"phone" json:"phone"`
	Email    string `yaml:"email" json:"email"`
	Bio      string `yaml:"bio" json:"bio"`
	// Summary is the opening paragraph of the about page.
	Summary   string   `yaml:"summary" json:"summary"`
	Strengths []string `yaml:"strengths" json:"strengths"`
	Interests []string `yaml:"interests" json:"interests"`
}

// SkillCategory is a named group of skills. Exactly one of Tags or Levels
// is set.
type SkillCategory struct {
	Key    string       `yaml:"key" json:"key"`
	Tags   []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Levels []SkillLevel `yaml:"levels,omitempty" json:"levels,omitempty"`
}

// HasLevels reports whether the category is drawn as level bars.
func (c SkillCategory) HasLevels() bool {
	return len(c.Levels) > 0
}

// SkillLevel is a skill with a proficiency from 0 to 100.
type SkillLevel struct {
	Skill string `yaml:"skill" json:"skill"`
	Level int    `yaml:"level" json:"level"`
}

// Project is a portfolio project.
type Project struct {
	Name         string       `yaml:"name" json:"name"`
	Description  string       `yaml:"description" json:"description"`
	Technologies []string     `yaml:"technologies" json:"technologies"`
	Features     []string     `yaml:"features,omitempty" json:"features,omitempty"`
	Links        ProjectLinks `yaml:"links,omitempty" json:"links,omitempty"`
}

// ProjectLinks are optional external references for a project.
type ProjectLinks struct {
	Live   string `yaml:"live,omitempty" json:"live,omitempty"`
	GitHub string `yaml:"github,omitempty" json:"github,omitempty"`
}

// Experience is a job record.
type Experience struct {
	Position         string   `yaml:"position" json:"position"`
	Company          string   `yaml:"company" json:"company"`
	Location         string   `yaml:"location" json:"location"`
	Duration         string   `yaml:"duration" json:"duration"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
	Technologies     []string `yaml:"technologies" json:"technologies"`
}

// Education is a degree or school record.
type Education struct {
	Degree      string `yaml:"degree" json:"degree"`
	Field       string `yaml:"field" json:"field"`
	Institution string `yaml:"institution" json:"institution"`
	Location    string `yaml:"location" json:"location"`
	Duration    string `yaml:"duration" json:"duration"`
	Grade       string `yaml:"grade" json:"grade"`
}

// Achievement is a milestone with an icon and tags.
type Achievement struct {
	Icon        string   `yaml:"icon" json:"icon"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
}

// Paper is a research publication.
type Paper struct {
	Title         string   `yaml:"title" json:"title"`
	Journal       string   `yaml:"journal" json:"journal"`
	Abstract      string   `yaml:"abstract" json:"abstract"`
	Contributions []string `yaml:"contributions" json:"contributions"`
}

// Contact is one way to reach the portfolio owner.
type Contact struct {
	Type  string `yaml:"type" json:"type"`
	Value string `yaml:"value" json:"value"`
	Icon  string `yaml:"icon" json:"icon"`
	Link  string `yaml:"link,omitempty" json:"link,omitempty"`
}

// Readme is the content of README.md.
type Readme struct {
	Title string `yaml:"title" json:"title"`
	// Body is Markdown.
	Body string `yaml:"body" json:"body"`
}

// Markdown returns the full README as a Markdown document.
func (r Readme) Markdown() string {
	if r.Title == "" {
		return r.Body
	}
	return "## " + r.Title + "\n\n" + r.Body
}

// Welcome holds the lines of the greeting entry shown on session start.
type Welcome struct {
	Greeting string `yaml:"greeting" json:"greeting"`
	Hint     string `yaml:"hint" json:"hint"`
	Tip      string `yaml:"tip" json:"tip"`
}
