package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gabryel85/peopletable/internal/domain"
)

// Control glyphs shown in the action columns.
const (
	MarkSelect   = "[+]"
	MarkDeselect = "[-]"
	MarkDelete   = "×"
	MarkDown     = "↓"
	MarkUp       = "↑"
	MarkCursor   = "›"
)

const colName = 1

var headers = []string{" ", "name", "sex", "born", " "}

// Options tune a single render. Cursor is the highlighted row index, -1 for none.
type Options struct {
	Cursor int
	Width  int
}

// Table renders the caption followed by the people table, or the empty
// placeholder when there is nobody left.
func Table(state domain.TableState, theme Theme, opts Options) string {
	if state.Empty() {
		return theme.Subtitle.Render(domain.EmptyPlaceholder)
	}

	rows := state.Rows()
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, rowCells(r, theme, r.Index == opts.Cursor))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.Border).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header
			}
			if row < 0 || row >= len(rows) {
				return lipgloss.NewStyle().Padding(0, 1)
			}
			return cellStyle(rows[row], col, theme, rows[row].Index == opts.Cursor)
		})
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}

	return theme.Caption.Render(state.Caption()) + "\n" + t.String()
}

func rowCells(r domain.Row, theme Theme, cursor bool) []string {
	toggle := MarkSelect
	if r.Selected {
		toggle = MarkDeselect
	}
	if cursor {
		toggle = MarkCursor + " " + toggle
	} else {
		toggle = "  " + toggle
	}

	return []string{
		toggle,
		r.Person.Name + " " + MarkDelete,
		string(r.Person.Sex),
		strconv.Itoa(r.Person.Born),
		controls(r, theme),
	}
}

// controls renders the reorder buttons; a disabled button is drawn faint.
func controls(r domain.Row, theme Theme) string {
	down, up := MarkDown, MarkUp
	if !r.CanMoveDown {
		down = theme.Disabled.Render(down)
	}
	if !r.CanMoveUp {
		up = theme.Disabled.Render(up)
	}
	return strings.Join([]string{down, up}, " ")
}

func cellStyle(r domain.Row, col int, theme Theme, cursor bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)

	switch {
	case r.Selected:
		s = s.Background(theme.Highlight).Foreground(theme.OnHighlight)
	case r.Index%2 == 1:
		s = s.Background(theme.Stripe)
	}
	if cursor {
		s = s.Bold(true)
	}

	if col == colName {
		switch r.Tone {
		case domain.ToneMale:
			s = s.Foreground(theme.Male)
		case domain.ToneFemale:
			s = s.Foreground(theme.Female)
		}
	}
	return s
}
