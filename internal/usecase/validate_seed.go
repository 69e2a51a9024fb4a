package usecase

import (
	"context"

	"github.com/gabryel85/peopletable/internal/ports"
)

type ValidateSeed struct {
	source ports.PeopleSource
}

func NewValidateSeed(source ports.PeopleSource) *ValidateSeed {
	return &ValidateSeed{source: source}
}

// Execute loads and validates a seed without opening a table. It returns the
// number of people in the seed.
func (uc *ValidateSeed) Execute(ctx context.Context, seedPath string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	people, err := uc.source.LoadPeople(seedPath)
	if err != nil {
		return 0, err
	}
	return len(people), nil
}
