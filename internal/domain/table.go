package domain

import (
	"slices"
	"strings"
)

const (
	// CaptionPlaceholder is shown in the caption when nobody is selected.
	CaptionPlaceholder = "-"
	// EmptyPlaceholder replaces the table when the people list is empty.
	EmptyPlaceholder = "No people yet"
)

// Tone is the display category of a row's name, keyed by sex.
type Tone string

const (
	ToneNone   Tone = ""
	ToneMale   Tone = "male"
	ToneFemale Tone = "female"
)

func toneOf(s Sex) Tone {
	switch s {
	case SexMale:
		return ToneMale
	case SexFemale:
		return ToneFemale
	default:
		return ToneNone
	}
}

// Row is the derived, render-ready view of one person at its current index.
type Row struct {
	Index       int
	Person      Person
	Selected    bool
	Tone        Tone
	CanMoveDown bool
	CanMoveUp   bool
}

// TableState holds the ordered people list and the selected set.
//
// Every transition returns a new TableState backed by fresh slices; the
// receiver is left untouched. Lookups are linear scans on slug performed at
// call time, so a transition is always relative to the current order.
type TableState struct {
	people   []Person
	selected []Person

	pruneOnDelete bool
}

type TableOption func(*TableState)

// WithPruneOnDelete makes Delete also drop the deleted person from the
// selection. Off by default: a deleted person stays in the selected set.
func WithPruneOnDelete(enabled bool) TableOption {
	return func(s *TableState) { s.pruneOnDelete = enabled }
}

// NewTableState seeds a table from people. The input slice is copied.
func NewTableState(people []Person, opts ...TableOption) TableState {
	s := TableState{
		people:   slices.Clone(people),
		selected: []Person{},
	}
	if s.people == nil {
		s.people = []Person{}
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// People returns a copy of the current people list in display order.
func (s TableState) People() []Person { return slices.Clone(s.people) }

// Selected returns a copy of the selected set in selection order.
func (s TableState) Selected() []Person { return slices.Clone(s.selected) }

func (s TableState) Len() int { return len(s.people) }

// Empty reports whether there is nothing to render but the placeholder.
func (s TableState) Empty() bool { return len(s.people) == 0 }

// PersonAt returns the person at display index i.
func (s TableState) PersonAt(i int) (Person, bool) {
	if i < 0 || i >= len(s.people) {
		return Person{}, false
	}
	return s.people[i], true
}

// IndexOf returns the current index of p by slug, or -1.
func (s TableState) IndexOf(p Person) int {
	return slices.IndexFunc(s.people, p.SameAs)
}

// IsSelected reports whether some selected entry shares p's slug.
func (s TableState) IsSelected(p Person) bool {
	return slices.ContainsFunc(s.selected, p.SameAs)
}

// ToggleSelection removes every selected entry with p's slug when
// isRemoving is set, and otherwise appends p. Appending does not check for
// duplicates; callers that toggle from IsSelected never produce one.
func (s TableState) ToggleSelection(p Person, isRemoving bool) TableState {
	next := s
	if isRemoving {
		next.selected = without(s.selected, p)
		return next
	}

	next.selected = make([]Person, 0, len(s.selected)+1)
	next.selected = append(next.selected, s.selected...)
	next.selected = append(next.selected, p)
	return next
}

// Delete drops the person with p's slug from the list. Absent slugs are a
// no-op. The selection is kept as is unless prune-on-delete is enabled.
func (s TableState) Delete(p Person) TableState {
	next := s
	next.people = without(s.people, p)
	if s.pruneOnDelete {
		return next.Prune()
	}
	return next
}

// MoveDown swaps p with its successor. No-op when p is last or absent.
func (s TableState) MoveDown(p Person) TableState {
	i := s.IndexOf(p)
	if i < 0 || i >= len(s.people)-1 {
		return s
	}
	return s.swap(i, i+1)
}

// MoveUp swaps p with its predecessor. No-op when p is first or absent.
func (s TableState) MoveUp(p Person) TableState {
	i := s.IndexOf(p)
	if i <= 0 {
		return s
	}
	return s.swap(i-1, i)
}

// Prune drops selected entries whose slug is no longer in the people list.
func (s TableState) Prune() TableState {
	next := s
	next.selected = make([]Person, 0, len(s.selected))
	for _, sel := range s.selected {
		if slices.ContainsFunc(s.people, sel.SameAs) {
			next.selected = append(next.selected, sel)
		}
	}
	return next
}

// Caption is the comma-joined names of the selected people, or "-".
func (s TableState) Caption() string {
	if len(s.selected) == 0 {
		return CaptionPlaceholder
	}
	names := make([]string, 0, len(s.selected))
	for _, p := range s.selected {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// Rows derives the render state of every row from the current index.
func (s TableState) Rows() []Row {
	rows := make([]Row, 0, len(s.people))
	last := len(s.people) - 1
	for i, p := range s.people {
		rows = append(rows, Row{
			Index:       i,
			Person:      p,
			Selected:    s.IsSelected(p),
			Tone:        toneOf(p.Sex),
			CanMoveDown: i < last,
			CanMoveUp:   i > 0,
		})
	}
	return rows
}

func (s TableState) swap(i, j int) TableState {
	next := s
	next.people = slices.Clone(s.people)
	next.people[i], next.people[j] = next.people[j], next.people[i]
	return next
}

func without(in []Person, p Person) []Person {
	out := make([]Person, 0, len(in))
	for _, q := range in {
		if !q.SameAs(p) {
			out = append(out, q)
		}
	}
	return out
}
