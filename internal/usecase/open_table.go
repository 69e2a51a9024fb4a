package usecase

import (
	"context"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/gabryel85/peopletable/internal/ports"
)

type OpenTable struct {
	source ports.PeopleSource
	opts   []domain.TableOption
}

func NewOpenTable(source ports.PeopleSource, opts ...domain.TableOption) *OpenTable {
	return &OpenTable{source: source, opts: opts}
}

// Execute loads the seed list and builds the initial table: every person in
// seed order, nobody selected.
func (uc *OpenTable) Execute(ctx context.Context, seedPath string) (domain.TableState, error) {
	if err := ctx.Err(); err != nil {
		return domain.TableState{}, err
	}

	people, err := uc.source.LoadPeople(seedPath)
	if err != nil {
		return domain.TableState{}, err
	}

	return domain.NewTableState(people, uc.opts...), nil
}

// Select marks every slug present in state as selected, in order. Slugs that
// are already selected stay as they are. Unknown slugs are skipped and returned.
func Select(state domain.TableState, slugs []string) (domain.TableState, []string) {
	var unknown []string
	for _, slug := range slugs {
		p := domain.Person{Slug: slug}
		i := state.IndexOf(p)
		if i < 0 {
			unknown = append(unknown, slug)
			continue
		}
		p, _ = state.PersonAt(i)
		if !state.IsSelected(p) {
			state = state.ToggleSelection(p, false)
		}
	}
	return state, unknown
}
