package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/config"
)

func TestNewKeyMap_ArrowsAlwaysBound(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.PrevColumn = "a"
	keys := NewKeyMap(km)

	assert.True(t, key.Matches(tea.KeyPressMsg(tea.Key{Text: "a", Code: 'a'}), keys.PrevColumn))
	assert.True(t, key.Matches(tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft}), keys.PrevColumn))
	assert.False(t, key.Matches(tea.KeyPressMsg(tea.Key{Text: "h", Code: 'h'}), keys.PrevColumn))
	assert.Equal(t, "a/left", keys.PrevColumn.Help().Key)
}

func TestKeyMap_HelpBindingsDescribed(t *testing.T) {
	keys := NewKeyMap(config.DefaultKeyMappings())
	for _, b := range keys.HelpBindings() {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
	assert.Equal(t, "pick up task", keys.GrabTask.Help().Desc)
}
