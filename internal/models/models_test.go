package models

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/types"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("  Teal ")
	require.NoError(t, err)
	assert.Equal(t, ColorTeal, c)

	_, err = ParseColor("mauve")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestColor_NextWraps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ColorRed, ColorGray.Next())
	assert.Equal(t, ColorGray, ColorPink.Next())
	assert.Equal(t, Palette[0], Color("bogus").Next())
}

func TestColor_HexFallsBackToGray(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#0090FF", ColorBlue.Hex())
	assert.Equal(t, ColorGray.Hex(), Color("bogus").Hex())
}

func TestRandomColor_StaysInChoices(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	choices := []Color{ColorRed, ColorBlue}
	for range 50 {
		assert.Contains(t, choices, RandomColor(rng, choices))
	}
	assert.True(t, RandomColor(nil, nil).Valid())
}

func TestTask_CloneCopiesLink(t *testing.T) {
	t.Parallel()

	linked := types.TaskID("dep")
	task := Task{ID: "t1", LinkedTaskID: &linked}
	cp := task.Clone()
	*cp.LinkedTaskID = "other"

	assert.Equal(t, types.TaskID("dep"), *task.LinkedTaskID)
	assert.True(t, task.HasLink())
	assert.False(t, Task{}.HasLink())
}

func TestColumn_CloneNil(t *testing.T) {
	t.Parallel()

	var c *Column
	assert.Nil(t, c.Clone())

	orig := &Column{Title: "A"}
	cp := orig.Clone()
	cp.Title = "B"
	assert.Equal(t, "A", orig.Title)
}
