// Package logic holds the pure filtering rules for the picker. Nothing in
// here touches UI state; the field feeds it the applied query and renders
// whatever comes back.
package logic

import (
	"strings"

	"namepick/internal/domain"
)

// Matches checks if a candidate name contains the query as a
// case-insensitive substring. Surrounding whitespace on the query is
// ignored and an empty query matches everything.
func Matches(name, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(q))
}

// Visible derives the candidates the dropdown offers for an applied query.
// A focused field with an empty query offers the whole roster. Relative
// order always follows the source list; the input slice is never mutated.
func Visible(roster []domain.Candidate, query string, focused bool) []domain.Candidate {
	if focused && strings.TrimSpace(query) == "" {
		out := make([]domain.Candidate, len(roster))
		copy(out, roster)
		return out
	}

	out := make([]domain.Candidate, 0, len(roster))
	for _, c := range roster {
		if Matches(c.Name, query) {
			out = append(out, c)
		}
	}
	return out
}
