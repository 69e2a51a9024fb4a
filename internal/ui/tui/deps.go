package tui

import (
	"log/slog"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/gabryel85/peopletable/internal/ports"
)

type Deps struct {
	Source       ports.PeopleSource
	SeedPath     string
	TableOptions []domain.TableOption

	Logger *slog.Logger
}
