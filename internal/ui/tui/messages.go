package tui

import "github.com/gabryel85/peopletable/internal/domain"

type peopleLoadedMsg struct {
	seed  string
	state domain.TableState
	err   error
}
