package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabryel85/peopletable/internal/usecase"
)

const loadTimeout = 10 * time.Second

func cmdLoadPeople(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Source == nil {
			return peopleLoadedMsg{seed: deps.SeedPath, err: errors.New("PeopleSource is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		uc := usecase.NewOpenTable(deps.Source, deps.TableOptions...)
		state, err := uc.Execute(ctx, deps.SeedPath)
		return peopleLoadedMsg{seed: deps.SeedPath, state: state, err: err}
	}
}
