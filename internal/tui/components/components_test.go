package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

func linked() *types.TaskID {
	id := types.TaskID("other")
	return &id
}

func TestRenderColumn_EmptyLane(t *testing.T) {
	out := RenderColumn(ColumnProps{
		Column:       &models.Column{ID: "c1", Title: "Backlog", Color: models.ColorBlue},
		SelectedTask: -1,
		MaxVisible:   3,
	})

	assert.Contains(t, out, "Backlog (0)")
	assert.Contains(t, out, "No tasks")
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Title: "first"},
		{ID: "t2", Title: "second"},
		{ID: "t3", Title: "third"},
		{ID: "t4", Title: "fourth"},
	}

	out := RenderColumn(ColumnProps{
		Column:       &models.Column{ID: "c1", Title: "Doing"},
		Tasks:        tasks,
		Selected:     true,
		SelectedTask: 1,
		ScrollOffset: 1,
		MaxVisible:   2,
		DropIndex:    -1,
	})

	assert.Contains(t, out, "Doing (4)")
	assert.Contains(t, out, "more above")
	assert.Contains(t, out, "more below")
	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "third")
	assert.NotContains(t, out, "fourth")
}

func TestRenderColumn_TerminalMark(t *testing.T) {
	out := RenderColumn(ColumnProps{
		Column:     &models.Column{ID: "done", Title: "Done"},
		Terminal:   true,
		MaxVisible: 1,
	})
	assert.Contains(t, out, "✓")
}

func TestRenderColumn_DropSlot(t *testing.T) {
	out := RenderColumn(ColumnProps{
		Column:     &models.Column{ID: "c1", Title: "Doing"},
		Tasks:      []models.Task{{ID: "t1", Title: "only"}},
		MaxVisible: 3,
		DropTarget: true,
		DropIndex:  1,
	})
	assert.Contains(t, out, "┄")
}

func TestRenderTask(t *testing.T) {
	long := strings.Repeat("x", 50)
	out := RenderTask(TaskProps{Task: models.Task{ID: "abcdef123456", Title: long, LinkedTaskID: linked()}})

	assert.Contains(t, out, "...")
	assert.Contains(t, out, "⛓")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef123")
	assert.Equal(t, TaskCardHeight, lipgloss.Height(out))
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 80, Mode: "DRAG", Detail: "task \"a\"", Connection: "Live"})
	assert.Contains(t, out, "DRAG")
	assert.Contains(t, out, "Live")
	assert.Contains(t, out, "press ? for help")
	assert.Equal(t, 80, lipgloss.Width(out))
}

func TestRenderDescription_Empty(t *testing.T) {
	assert.Contains(t, RenderDescription(DescriptionProps{Width: 40}), "No description")
}
