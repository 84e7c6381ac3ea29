package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the host program.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// PanelTheme styles the frame drawn around the calendar.
type PanelTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 2)

	return Theme{
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Panel: PanelTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(lipgloss.Color("#39FF14")),
		},
	}
}
