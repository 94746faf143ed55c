// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HumanizeKey turns a camelCase category key into a title:
// "programmingLanguages" becomes "Programming Languages".
// Runs of capitals stay together ("coreAPIs" becomes "Core APIs").
func HumanizeKey(key string) string {
	var sb strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) && runes[i-1] != ' ' {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return cases.Title(language.English, cases.NoLower).String(strings.TrimSpace(sb.String()))
}

// Title returns the humanized category key.
func (c SkillCategory) Title() string {
	return HumanizeKey(c.Key)
}
