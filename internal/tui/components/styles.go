// Package components renders the pieces of the board screen.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle is the box around one lane
	ColumnStyle lipgloss.Style

	// TaskStyle is a card inside a lane
	TaskStyle lipgloss.Style

	// TitleStyle is used for the board name and column headers
	TitleStyle lipgloss.Style

	CreateInputBoxStyle   lipgloss.Style
	EditInputBoxStyle     lipgloss.Style
	DeleteConfirmBoxStyle lipgloss.Style
	HelpBoxStyle          lipgloss.Style
	TaskViewBoxStyle      lipgloss.Style

	InfoBannerStyle    lipgloss.Style
	WarningBannerStyle lipgloss.Style
	ErrorBannerStyle   lipgloss.Style

	// IndicatorStyle is used for the scroll arrows
	IndicatorStyle lipgloss.Style

	StatusBarStyle lipgloss.Style

	// LinkStyle marks cards that depend on another task
	LinkStyle lipgloss.Style
)

func init() {
	InitStyles(config.DefaultTheme())
}

// InitStyles initializes all styles with the given theme
func InitStyles(t config.Theme) {
	theme.Init(t)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(columnBoxWidth)

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder)).
		Width(taskCardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal))

	CreateInputBoxStyle = dialogBox(theme.Accent).Padding(1)
	EditInputBoxStyle = dialogBox(theme.InfoFg).Padding(1)
	DeleteConfirmBoxStyle = dialogBox(theme.ErrorFg).Padding(1)
	HelpBoxStyle = dialogBox(theme.InfoFg).Padding(1, 2)
	TaskViewBoxStyle = dialogBox(theme.Accent).Padding(1, 2)

	InfoBannerStyle = banner(theme.InfoFg)
	WarningBannerStyle = banner(theme.WarningFg)
	ErrorBannerStyle = banner(theme.ErrorFg)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.WarningFg)).
		Bold(true)
}

func dialogBox(border string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border))
}

func banner(fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Bold(true).
		Padding(0, 1)
}
