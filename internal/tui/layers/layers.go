// Package layers positions dialogs over the board
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer places content in the middle of the screen.
// It returns nil for empty content.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}
