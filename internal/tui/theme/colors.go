package theme

import "github.com/thenoetrevino/tablero/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	SelectedBorder string
	DragBorder     string
	TaskBorder     string
	Subtle         string
	Normal         string
	InfoFg         string
	WarningFg      string
	ErrorFg        string
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes the theme colors from the configured theme
func Init(t config.Theme) {
	Accent = t.Accent
	SelectedBorder = t.SelectedBorder
	DragBorder = t.DragBorder
	TaskBorder = t.TaskBorder
	Subtle = t.Subtle
	Normal = t.Normal
	InfoFg = t.InfoFg
	WarningFg = t.WarningFg
	ErrorFg = t.ErrorFg
}
