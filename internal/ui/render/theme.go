package render

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	Caption  lipgloss.Style
	Header   lipgloss.Style
	Border   lipgloss.Style
	Disabled lipgloss.Style

	// Row colors: selected rows, zebra stripes, and name tone by sex.
	Highlight   lipgloss.TerminalColor
	OnHighlight lipgloss.TerminalColor
	Stripe      lipgloss.TerminalColor
	Male        lipgloss.TerminalColor
	Female      lipgloss.TerminalColor
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Caption:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Disabled: lipgloss.NewStyle().Faint(true),

		Highlight:   lipgloss.Color("221"),
		OnHighlight: lipgloss.Color("0"),
		Stripe:      lipgloss.Color("236"),
		Male:        lipgloss.Color("33"),
		Female:      lipgloss.Color("197"),
	}
}
