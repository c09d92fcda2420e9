package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/nongdam/pkg/checklist"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tab    lipgloss.Style
	Footer FooterTheme
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Busy   lipgloss.Style
}

// For returns the theme of a tab. The tab colors match the exported image
// titles.
func For(tab checklist.Tab) Theme {
	accent := lipgloss.Color("#aeb4d1")
	if tab == checklist.Wish {
		accent = lipgloss.Color("#e8a0b4")
	}
	return Theme{
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2d3436")).
			Background(accent).
			Bold(true).
			Padding(0, 1),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Busy:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
	}
}
