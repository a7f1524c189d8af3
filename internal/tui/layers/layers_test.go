package layers

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCenteredLayer(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 10)+"\n", 5) + strings.Repeat(".", 10)
	layer := CreateCenteredLayer("ab\ncd", 10, 6)
	require.NotNil(t, layer)

	out := lipgloss.NewCanvas(lipgloss.NewLayer(base), layer).Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "....ab....", lines[2])
	assert.Equal(t, "....cd....", lines[3])
}

func TestCreateCenteredLayer_Empty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 10, 6))
}
