package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/gabryel85/peopletable/internal/ui/render"
)

type model struct {
	theme render.Theme
	deps  Deps
	log   *slog.Logger

	keys keyMap
	help help.Model

	state  domain.TableState
	loaded bool
	cursor int

	width int
	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	theme := render.DefaultTheme()
	return model{
		theme: theme,
		deps:  deps,
		log:   log,
		keys:  defaultKeyMap(),
		help:  newHelp(theme),
		state: domain.NewTableState(nil, deps.TableOptions...),
	}
}

func (m model) Init() tea.Cmd { return cmdLoadPeople(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case peopleLoadedMsg:
		if msg.err != nil {
			m.log.Error("seed.load.failed", "seed", msg.seed, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.log.Info("seed.loaded", "seed", msg.seed, "people", msg.state.Len())
		m.state = msg.state
		m.loaded = true
		m.cursor = 0
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.loaded {
		return m, nil
	}
	m.toast = ""

	switch {
	case key.Matches(msg, m.keys.Prune):
		m.state = m.state.Prune()
		m.log.Debug("table.prune", "selected", len(m.state.Selected()))
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.state.Len()-1 {
			m.cursor++
		}
		return m, nil
	}

	p, ok := m.state.PersonAt(m.cursor)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		removing := m.state.IsSelected(p)
		m.state = m.state.ToggleSelection(p, removing)
		m.log.Debug("table.toggle", "slug", p.Slug, "removing", removing)

	case key.Matches(msg, m.keys.Delete):
		m.state = m.state.Delete(p)
		m.cursor = clamp(m.cursor, 0, m.state.Len()-1)
		m.log.Debug("table.delete", "slug", p.Slug, "people", m.state.Len())

	case key.Matches(msg, m.keys.MoveDown):
		m.state = m.state.MoveDown(p)
		m.cursor = m.state.IndexOf(p)
		m.log.Debug("table.move_down", "slug", p.Slug, "index", m.cursor)

	case key.Matches(msg, m.keys.MoveUp):
		m.state = m.state.MoveUp(p)
		m.cursor = m.state.IndexOf(p)
		m.log.Debug("table.move_up", "slug", p.Slug, "index", m.cursor)
	}

	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, framePadding)
	header := m.theme.Title.Render("People") + "\n" +
		m.theme.Subtitle.Render("select, delete and reorder rows") + "\n"

	var body string
	switch {
	case m.toast != "" && !m.loaded:
		body = m.theme.Card.Render(m.theme.Toast.Render(m.toast))
	case !m.loaded:
		body = m.theme.Subtitle.Render("Loading…")
	default:
		body = render.Table(m.state, m.theme, m.tableOptions())
		if m.toast != "" {
			body += "\n" + m.theme.Toast.Render(m.toast)
		}
	}

	return wrap.Render(header + "\n" + body + "\n\n" + m.help.View(m.keys))
}

// framePadding is the horizontal padding View wraps around the table.
const framePadding = 2

func (m model) tableOptions() render.Options {
	return render.Options{
		Cursor: m.cursor,
		Width:  max(m.width-2*framePadding, 0),
	}
}

func newHelp(theme render.Theme) help.Model {
	h := help.New()
	h.Styles.ShortDesc = theme.Help
	h.Styles.FullDesc = theme.Help
	h.Styles.ShortSeparator = theme.Help
	h.Styles.FullSeparator = theme.Help
	h.Styles.Ellipsis = theme.Help
	return h
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
