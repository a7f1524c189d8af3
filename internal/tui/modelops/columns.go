// Package modelops holds the operations the key handlers perform on a tui.Model
package modelops

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/services/column"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Reload reads the board again from the store
func Reload(m *tui.Model) {
	if err := m.Board.Reload(m.Ctx); err != nil {
		slog.Error("failed to reload board", "board_id", m.Board.BoardID(), "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to reload board")
		return
	}
	m.ClampSelection()
}

// CreateColumn appends a column and selects it
func CreateColumn(m *tui.Model, title string) {
	col, err := m.App.ColumnService.Create(m.Ctx, m.Board.BoardID(), title)
	if err != nil {
		slog.Error("failed to create column", "error", err)
		m.NotificationState.Add(state.LevelError, UserMessage(m, err))
		return
	}
	Reload(m)
	m.Select(col.Order, 0)
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Created column %q", col.Title))
}

// RenameCurrentColumn changes the selected column's title
func RenameCurrentColumn(m *tui.Model, title string) {
	col := m.CurrentColumn()
	if col == nil {
		return
	}
	if err := m.App.ColumnService.Rename(m.Ctx, col.ID, title); err != nil {
		slog.Error("failed to rename column", "column_id", col.ID, "error", err)
		m.NotificationState.Add(state.LevelError, UserMessage(m, err))
		return
	}
	Reload(m)
}

// RecolorCurrentColumn steps the selected column to the next palette color
func RecolorCurrentColumn(m *tui.Model) {
	col := m.CurrentColumn()
	if col == nil {
		return
	}
	if err := m.App.ColumnService.Recolor(m.Ctx, col.ID, col.Color.Next()); err != nil {
		slog.Error("failed to recolor column", "column_id", col.ID, "error", err)
		m.NotificationState.Add(state.LevelError, UserMessage(m, err))
		return
	}
	Reload(m)
}

// DeleteCurrentColumn removes the selected column
func DeleteCurrentColumn(m *tui.Model) {
	col := m.CurrentColumn()
	if col == nil {
		return
	}
	if err := m.App.ColumnService.Delete(m.Ctx, col.ID); err != nil {
		slog.Warn("column not deleted", "column_id", col.ID, "error", err)
		m.NotificationState.Add(state.LevelError, UserMessage(m, err))
		return
	}
	m.UiState.ForgetColumn(col.ID)
	Reload(m)
	m.UiState.SetSelectedTask(0)
	m.ClampSelection()
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Deleted column %q", col.Title))
}

// SwapCurrentColumn exchanges the selected column with its neighbour and keeps it selected
func SwapCurrentColumn(m *tui.Model, dir column.Direction) {
	col := m.CurrentColumn()
	if col == nil {
		return
	}
	moved, err := m.App.ColumnService.SwapAdjacent(m.Ctx, col.ID, dir)
	if err != nil {
		slog.Error("failed to move column", "column_id", col.ID, "error", err)
		m.NotificationState.Add(state.LevelError, UserMessage(m, err))
		return
	}
	if !moved {
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Column is already at the %s edge", dir))
		return
	}
	Reload(m)
	m.Select(m.UiState.SelectedColumn()+int(dir), m.UiState.SelectedTask())
}
