package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/google/go-cmp/cmp"
)

type fakeSource struct {
	people []domain.Person
	err    error
	path   string
}

func (f *fakeSource) LoadPeople(path string) ([]domain.Person, error) {
	f.path = path
	return f.people, f.err
}

var seed = []domain.Person{
	{Slug: "a", Name: "Alice", Sex: domain.SexFemale, Born: 1990},
	{Slug: "b", Name: "Bob", Sex: domain.SexMale, Born: 1985},
}

func TestOpenTable_BuildsInitialState(t *testing.T) {
	src := &fakeSource{people: seed}

	state, err := NewOpenTable(src).Execute(context.Background(), "people.json")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if src.path != "people.json" {
		t.Fatalf("expected seed path passed through, got %q", src.path)
	}
	if diff := cmp.Diff(seed, state.People()); diff != "" {
		t.Fatalf("people mismatch (-want +got):\n%s", diff)
	}
	if state.Caption() != domain.CaptionPlaceholder {
		t.Fatalf("expected nobody selected, caption=%q", state.Caption())
	}
}

func TestOpenTable_PassesTableOptions(t *testing.T) {
	src := &fakeSource{people: seed}

	state, err := NewOpenTable(src, domain.WithPruneOnDelete(true)).Execute(context.Background(), "")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	state = state.ToggleSelection(seed[1], false).Delete(seed[1])
	if state.IsSelected(seed[1]) {
		t.Fatalf("expected prune-on-delete to be applied")
	}
}

func TestOpenTable_SourceError(t *testing.T) {
	loadErr := &domain.OpError{Op: "peopleseed.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}

	_, err := NewOpenTable(&fakeSource{err: loadErr}).Execute(context.Background(), "x.json")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestOpenTable_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{people: seed}
	_, err := NewOpenTable(src).Execute(ctx, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if src.path != "" {
		t.Fatalf("expected source not to be called")
	}
}

func TestSelect(t *testing.T) {
	state := domain.NewTableState(seed)

	got, unknown := Select(state, []string{"b", "zz", "a"})
	if got.Caption() != "Bob, Alice" {
		t.Fatalf("expected caption Bob, Alice, got %q", got.Caption())
	}
	if diff := cmp.Diff([]string{"zz"}, unknown); diff != "" {
		t.Fatalf("unknown mismatch (-want +got):\n%s", diff)
	}

	// Naming a slug twice keeps it selected, once.
	got, _ = Select(state, []string{"a", "a"})
	if !got.IsSelected(seed[0]) {
		t.Fatalf("expected a to stay selected")
	}
	if n := len(got.Selected()); n != 1 {
		t.Fatalf("expected one selected entry, got %d", n)
	}

	// Already selected people are left alone.
	got, _ = Select(state.ToggleSelection(seed[1], false), []string{"b"})
	if got.Caption() != "Bob" {
		t.Fatalf("expected caption Bob, got %q", got.Caption())
	}
}

func TestValidateSeed(t *testing.T) {
	n, err := NewValidateSeed(&fakeSource{people: seed}).Execute(context.Background(), "people.json")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 people, got %d", n)
	}

	invalid := &domain.OpError{Op: "peopleseed.validate", Kind: domain.KindInvalidData, Err: domain.ErrInvalidData}
	_, err = NewValidateSeed(&fakeSource{err: invalid}).Execute(context.Background(), "people.json")
	if !domain.IsKind(err, domain.KindInvalidData) {
		t.Fatalf("expected KindInvalidData, got %v", err)
	}
}
