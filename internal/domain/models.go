package domain

import "fmt"

// Candidate represents one selectable person from the roster
type Candidate struct {
	Slug string // unique key, derived from Name when the roster omits it
	Name string
	Born int
	Died int
}

// Label formats the candidate for the title region and scripted output
func (c Candidate) Label() string {
	return fmt.Sprintf("%s (%d - %d)", c.Name, c.Born, c.Died)
}
