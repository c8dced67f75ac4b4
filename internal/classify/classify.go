// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify labels affiliation strings as academic or industry.
package classify

import (
	"strings"
	"unicode"
)

// academicKeywords are the tokens that mark an affiliation as academic.
var academicKeywords = map[string]struct{}{
	"school":     {},
	"university": {},
	"college":    {},
	"institute":  {},
	"research":   {},
	"lab":        {},
}

// IsAcademic reports whether the affiliation string names an academic
// institution: punctuation is stripped, the result lower-cased and
// split on whitespace, and the tokens tested against the keyword set.
// Matching is whole-token only: "laboratory" stays a single token and
// does not match "lab", so such affiliations classify as non-academic.
// The empty string has no tokens and is likewise non-academic.
func IsAcademic(affiliation string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, affiliation)

	for _, token := range strings.Fields(strings.ToLower(cleaned)) {
		if _, ok := academicKeywords[token]; ok {
			return true
		}
	}
	return false
}
