package modelops

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/tablero/internal/dragdrop"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// GrabTask picks up the selected card
func GrabTask(m *tui.Model) {
	task, ok := m.CurrentTask()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No task selected")
		return
	}
	if err := m.Drag.StartTaskDrag(task.ID); err != nil {
		m.NotificationState.Add(state.LevelError, UserMessage(m, err))
		return
	}
	m.UiState.SetMode(state.DragMode)
}

// GrabColumn picks up the selected column
func GrabColumn(m *tui.Model) {
	col := m.CurrentColumn()
	if col == nil {
		return
	}
	if err := m.Drag.StartColumnDrag(col.ID); err != nil {
		m.NotificationState.Add(state.LevelError, UserMessage(m, err))
		return
	}
	m.UiState.SetMode(state.DragMode)
}

// MoveHover shifts the drop target by dx columns and dy card slots
func MoveHover(m *tui.Model, dx, dy int) {
	g, ok := m.Drag.Active()
	if !ok {
		return
	}
	ids := m.Board.ColumnIDs()
	if len(ids) == 0 {
		return
	}

	var (
		target   dragdrop.Location
		col, row int
	)
	switch g.Kind {
	case dragdrop.ColumnDrag:
		col = clamp(g.Hover.Index+dx, 0, len(ids)-1)
		target = dragdrop.Location{ColumnID: ids[col], Index: col}

	case dragdrop.TaskDrag:
		col = slices.Index(ids, g.Hover.ColumnID)
		if col < 0 {
			col = 0
		}
		col = clamp(col+dx, 0, len(ids)-1)

		// a card returning to its own lane cannot land past the last slot
		slots := len(m.Board.Lane(ids[col]))
		if from, _, found := m.Board.Locate(g.TaskID); found && from == ids[col] {
			slots--
		}
		row = clamp(g.Hover.Index+dy, 0, max(slots, 0))
		target = dragdrop.Location{ColumnID: ids[col], Index: row}
	}

	if err := m.Drag.Hover(target); err != nil {
		slog.Debug("hover ignored", "error", err)
		return
	}
	m.Select(col, row)
}

// Drop ends the gesture at the hovered target and hands the command to the gate.
// Rejections come back through the gate's error listener.
func Drop(m *tui.Model) {
	g, ok := m.Drag.Active()
	m.UiState.SetMode(state.NormalMode)
	if !ok {
		return
	}

	cmd, err := m.Drag.DropHovered()
	if err != nil {
		m.NotificationState.Add(state.LevelError, UserMessage(m, err))
		return
	}
	if cmd == nil {
		return
	}

	m.Board.Dispatch(m.Ctx, cmd)

	switch g.Kind {
	case dragdrop.TaskDrag:
		if col, idx, found := m.Board.Locate(g.TaskID); found {
			m.Select(slices.Index(m.Board.ColumnIDs(), col), idx)
		}
	case dragdrop.ColumnDrag:
		m.Select(slices.Index(m.Board.ColumnIDs(), g.ColumnID), 0)
	}
}

// CancelDrag puts whatever is being carried back
func CancelDrag(m *tui.Model) {
	m.Drag.Cancel()
	m.UiState.SetMode(state.NormalMode)
	m.ClampSelection()
}

// DragDetail describes the gesture for the status bar
func DragDetail(m *tui.Model) string {
	g, ok := m.Drag.Active()
	if !ok {
		return ""
	}
	switch g.Kind {
	case dragdrop.TaskDrag:
		title := g.TaskID.String()
		if t, found := m.Board.Task(g.TaskID); found {
			title = t.Title
		}
		return fmt.Sprintf("moving %q to %s, slot %d", title, columnTitle(m, g.Hover.ColumnID), g.Hover.Index+1)
	case dragdrop.ColumnDrag:
		return fmt.Sprintf("moving column %q to position %d", columnTitle(m, g.ColumnID), g.Hover.Index+1)
	}
	return ""
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
