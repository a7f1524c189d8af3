package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

type DescriptionProps struct {
	Description string
	Width       int
}

// Glamour renderers are expensive to build, keep one per width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a task description as markdown
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No description")
	}

	renderer, err := getRenderer(props.Width)
	if err != nil {
		return props.Description
	}
	rendered, err := renderer.Render(props.Description)
	if err != nil {
		return props.Description
	}
	return strings.TrimSpace(rendered)
}
