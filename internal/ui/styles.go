// Package ui renders the game in the terminal and turns key presses into session commands.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds one color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
	Primary    lipgloss.Color // mark X
	Secondary  lipgloss.Color // mark O
	Success    lipgloss.Color
	Danger     lipgloss.Color
}

var (
	LightTheme = Theme{
		Background: lipgloss.Color("#f8fafc"),
		Foreground: lipgloss.Color("#0f172a"),
		Surface:    lipgloss.Color("#e2e8f0"),
		Border:     lipgloss.Color("#cbd5e1"),
		Muted:      lipgloss.Color("#64748b"),
		Primary:    lipgloss.Color("#4f46e5"),
		Secondary:  lipgloss.Color("#db2777"),
		Success:    lipgloss.Color("#16a34a"),
		Danger:     lipgloss.Color("#dc2626"),
	}

	DarkTheme = Theme{
		Background: lipgloss.Color("#0f172a"),
		Foreground: lipgloss.Color("#f1f5f9"),
		Surface:    lipgloss.Color("#1e293b"),
		Border:     lipgloss.Color("#475569"),
		Muted:      lipgloss.Color("#94a3b8"),
		Primary:    lipgloss.Color("#818cf8"),
		Secondary:  lipgloss.Color("#f472b6"),
		Success:    lipgloss.Color("#4ade80"),
		Danger:     lipgloss.Color("#f87171"),
	}
)

// Styles are derived from a Theme.
type Styles struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Panel   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style

	Cell    lipgloss.Style
	Cursor  lipgloss.Style
	Winning lipgloss.Style
	MarkX   lipgloss.Style
	MarkO   lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastError   lipgloss.Style
}

// NewStyles builds the style set for dark or light mode.
func NewStyles(darkMode bool) Styles {
	theme := LightTheme
	if darkMode {
		theme = DarkTheme
	}

	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).MarginBottom(1),
		Status:  lipgloss.NewStyle().Bold(true).Padding(0, 1).MarginBottom(1),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border).Padding(0, 1).MarginLeft(2),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground).MarginBottom(1),
		Muted:   lipgloss.NewStyle().Foreground(theme.Muted),

		Cell:    lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(theme.Muted),
		Cursor:  lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Background(theme.Surface).Underline(true),
		Winning: lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Background(theme.Success).Foreground(theme.Background),
		MarkX:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		MarkO:   lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),

		ToastSuccess: toast.Foreground(theme.Background).Background(theme.Success),
		ToastInfo:    toast.Foreground(theme.Foreground).Background(theme.Surface),
		ToastError:   toast.Foreground(theme.Background).Background(theme.Danger),
	}
}
