// Package roster loads the candidate list the picker filters over.
//
// A roster file is a TOML document of [[person]] tables:
//
//	[[person]]
//	slug = "ada-lovelace" # optional, derived from name when omitted
//	name = "Ada Lovelace"
//	born = 1815
//	died = 1852
//
// File order is preserved; the UI never reorders candidates.
package roster

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"namepick/internal/domain"
)

// Validation errors, wrapped with the offending entry's position.
var (
	ErrNoName        = errors.New("person has no name")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrLifespan      = errors.New("died before born")
)

type personEntry struct {
	Slug string `toml:"slug,omitempty"`
	Name string `toml:"name"`
	Born int    `toml:"born"`
	Died int    `toml:"died"`
}

type rosterFile struct {
	Person []personEntry `toml:"person"`
}

// Load reads and validates a roster file
func Load(path string) ([]domain.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	candidates, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}
	return candidates, nil
}

// Parse decodes a TOML roster document, derives missing slugs and
// validates every entry. Order of entries is kept as written.
func Parse(data []byte) ([]domain.Candidate, error) {
	var file rosterFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(file.Person))
	seen := make(map[string]bool, len(file.Person))
	for i, p := range file.Person {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("person %d: %w", i+1, ErrNoName)
		}
		if p.Died < p.Born {
			return nil, fmt.Errorf("person %d (%s): %w", i+1, name, ErrLifespan)
		}
		slug := strings.TrimSpace(p.Slug)
		if slug == "" {
			slug = Slugify(name)
		}
		if seen[slug] {
			return nil, fmt.Errorf("person %d (%s): %w: %s", i+1, name, ErrDuplicateSlug, slug)
		}
		seen[slug] = true
		candidates = append(candidates, domain.Candidate{
			Slug: slug,
			Name: name,
			Born: p.Born,
			Died: p.Died,
		})
	}
	return candidates, nil
}

// Slugify lowercases a name and joins its words with dashes,
// dropping anything that is not a letter, digit or dash.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Builtin returns the roster shipped with the binary, used when no
// roster file is configured. Callers may mutate the returned slice.
func Builtin() []domain.Candidate {
	return []domain.Candidate{
		{Slug: "ada-lovelace", Name: "Ada Lovelace", Born: 1815, Died: 1852},
		{Slug: "charles-babbage", Name: "Charles Babbage", Born: 1791, Died: 1871},
		{Slug: "george-boole", Name: "George Boole", Born: 1815, Died: 1864},
		{Slug: "alan-turing", Name: "Alan Turing", Born: 1912, Died: 1954},
		{Slug: "alonzo-church", Name: "Alonzo Church", Born: 1903, Died: 1995},
		{Slug: "john-von-neumann", Name: "John von Neumann", Born: 1903, Died: 1957},
		{Slug: "grace-hopper", Name: "Grace Hopper", Born: 1906, Died: 1992},
		{Slug: "claude-shannon", Name: "Claude Shannon", Born: 1916, Died: 2001},
		{Slug: "edsger-dijkstra", Name: "Edsger Dijkstra", Born: 1930, Died: 2002},
		{Slug: "john-backus", Name: "John Backus", Born: 1924, Died: 2007},
		{Slug: "dennis-ritchie", Name: "Dennis Ritchie", Born: 1941, Died: 2011},
		{Slug: "niklaus-wirth", Name: "Niklaus Wirth", Born: 1934, Died: 2024},
	}
}
