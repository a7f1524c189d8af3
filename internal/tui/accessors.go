package tui

import (
	"github.com/thenoetrevino/tablero/internal/models"
)

// Columns returns the board's columns left to right
func (m *Model) Columns() []*models.Column {
	return m.Board.Columns()
}

// CurrentColumn returns the selected column, nil when the board has none
func (m *Model) CurrentColumn() *models.Column {
	columns := m.Columns()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(columns) {
		return nil
	}
	return columns[idx]
}

// CurrentTasks returns the cards of the selected column
func (m *Model) CurrentTasks() []models.Task {
	col := m.CurrentColumn()
	if col == nil {
		return nil
	}
	return m.Board.Lane(col.ID)
}

// CurrentTask returns the selected card
func (m *Model) CurrentTask() (models.Task, bool) {
	tasks := m.CurrentTasks()
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}

// ClampSelection keeps the cursor on the board after columns or cards disappear
func (m *Model) ClampSelection() {
	columns := m.Columns()
	if len(columns) == 0 {
		m.UiState.ResetSelection()
		return
	}
	if m.UiState.SelectedColumn() >= len(columns) {
		m.UiState.SetSelectedColumn(len(columns) - 1)
	}

	tasks := m.Board.Lane(columns[m.UiState.SelectedColumn()].ID)
	if m.UiState.SelectedTask() >= len(tasks) {
		m.UiState.SetSelectedTask(len(tasks) - 1)
	}
	m.UiState.EnsureSelectionVisible(len(columns))
	m.UiState.EnsureTaskVisible(columns[m.UiState.SelectedColumn()].ID, m.UiState.SelectedTask())
}

// Select moves the cursor to a column and card index
func (m *Model) Select(column, task int) {
	m.UiState.SetSelectedColumn(column)
	m.UiState.SetSelectedTask(task)
	m.ClampSelection()
}
