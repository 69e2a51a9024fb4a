package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// guardedModel keeps the table usable after a panic in Update or View: the
// panic is logged with its stack and the last good state is kept.
type guardedModel struct {
	inner model
	log   *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) guardedModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return guardedModel{inner: m, log: log}
}

func (g guardedModel) Init() tea.Cmd { return g.inner.Init() }

func (g guardedModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	last := g.inner
	defer func() {
		if r := recover(); r != nil {
			g.report("tui.update", r)
			g.inner = last.afterPanic()
			next, cmd = g, nil
		}
	}()

	updated, cmd := g.inner.Update(msg)
	switch u := updated.(type) {
	case model:
		g.inner = u
	case guardedModel:
		g = u
	}
	return g, cmd
}

func (g guardedModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.report("tui.view", r)
			out = panicToast
		}
	}()
	return g.inner.View()
}

func (g guardedModel) report(where string, r any) {
	g.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

// afterPanic is the state shown once a transition blew up.
func (m model) afterPanic() model {
	m.cursor = clamp(m.cursor, 0, m.state.Len()-1)
	m.toast = panicToast
	return m
}

var _ tea.Model = guardedModel{}
