package domain

import (
	"fmt"
	"strings"
)

// Sex is the two-valued category a Person is rendered by.
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// Valid reports whether s is one of the known categories.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Person is a single seed record. It is never mutated after loading,
// only removed or reordered by position.
type Person struct {
	Slug string
	Name string
	Sex  Sex
	Born int
}

// SameAs reports whether p and other share a slug.
func (p Person) SameAs(other Person) bool {
	return p.Slug == other.Slug
}

// ValidatePeople checks the invariants a seed list must hold before it can
// back a table: non-empty slug and name, known sex, unique slugs.
func ValidatePeople(people []Person) error {
	seen := make(map[string]int, len(people))

	for i, p := range people {
		field := fmt.Sprintf("people[%d]", i)

		if strings.TrimSpace(p.Slug) == "" {
			return fmt.Errorf("%w: %s.slug is required", ErrInvalidData, field)
		}
		if prev, ok := seen[p.Slug]; ok {
			return fmt.Errorf("%w: %s.slug %q duplicates people[%d]", ErrInvalidData, field, p.Slug, prev)
		}
		seen[p.Slug] = i

		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: %s.name is required", ErrInvalidData, field)
		}
		if !p.Sex.Valid() {
			return fmt.Errorf("%w: %s.sex %q must be %q or %q", ErrInvalidData, field, string(p.Sex), SexMale, SexFemale)
		}
	}

	return nil
}
