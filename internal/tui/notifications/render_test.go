package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

func TestRenderAll(t *testing.T) {
	out := RenderAll([]state.Notification{
		{Level: state.LevelInfo, Message: "column created"},
		{Level: state.LevelError, Message: "move blocked"},
	})

	assert.Contains(t, out, "• column created")
	assert.Contains(t, out, "✕ move blocked")
}

func TestFromLevel(t *testing.T) {
	assert.Equal(t, Warning, FromLevel(state.LevelWarning))
	assert.Equal(t, Error, FromLevel(state.LevelError))
	assert.Equal(t, Info, FromLevel(state.LevelInfo))
}
