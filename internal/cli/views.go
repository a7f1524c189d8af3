package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// BoardView is the output shape of a board
type BoardView struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	TerminalColumnID string       `json:"terminal_column_id,omitempty"`
	Columns          []ColumnView `json:"columns,omitempty"`
}

// NewBoardView converts a board and, optionally, its columns
func NewBoardView(b *models.Board, columns []*models.Column) BoardView {
	v := BoardView{ID: string(b.ID), Name: b.Name, TerminalColumnID: string(b.Terminal())}
	for _, c := range columns {
		v.Columns = append(v.Columns, NewColumnView(c, b, -1))
	}
	return v
}

func (v BoardView) GetID() string { return v.ID }

func (v BoardView) Human() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (ID: %s)", styles.SuccessStyle.Render("✓"), styles.TitleStyle.Render(v.Name), v.ID)
	for _, c := range v.Columns {
		fmt.Fprintf(&sb, "\n  %s", c.chip())
	}
	return sb.String()
}

// BoardList is the output of board list
type BoardList struct {
	Boards []BoardView `json:"boards"`
}

func (l BoardList) GetIDs() []string {
	ids := make([]string, len(l.Boards))
	for i, b := range l.Boards {
		ids[i] = b.ID
	}
	return ids
}

func (l BoardList) Human() string {
	if len(l.Boards) == 0 {
		return "No boards yet. Create one with: tablero board create --name <name>"
	}
	lines := make([]string, len(l.Boards))
	for i, b := range l.Boards {
		lines[i] = fmt.Sprintf("  %s  %s", styles.TitleStyle.Render(b.Name), styles.SubtitleStyle.Render(b.ID))
	}
	return "Boards:\n" + strings.Join(lines, "\n")
}

// ColumnView is the output shape of a column
type ColumnView struct {
	ID        string `json:"id"`
	BoardID   string `json:"board_id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	Order     int    `json:"order"`
	IsDefault bool   `json:"is_default"`
	Terminal  bool   `json:"terminal"`
	TaskCount int    `json:"task_count,omitempty"`
}

// NewColumnView converts a column; tasks < 0 leaves the count out
func NewColumnView(c *models.Column, b *models.Board, tasks int) ColumnView {
	return ColumnView{
		ID:        string(c.ID),
		BoardID:   string(c.BoardID),
		Title:     c.Title,
		Color:     string(c.Color),
		Order:     c.Order,
		IsDefault: c.IsDefault,
		Terminal:  b != nil && b.Terminal() == c.ID,
		TaskCount: max(tasks, 0),
	}
}

func (v ColumnView) chip() string {
	s := styles.ColumnChip(v.Title, models.Color(v.Color))
	if v.Terminal {
		s += styles.SubtitleStyle.Render(" (terminal)")
	}
	return s
}

func (v ColumnView) GetID() string { return v.ID }

func (v ColumnView) Human() string {
	return fmt.Sprintf("%s Column %s at position %d (ID: %s)", styles.SuccessStyle.Render("✓"), v.chip(), v.Order, v.ID)
}

// ColumnList is the output of column list
type ColumnList struct {
	Board   string       `json:"board"`
	Columns []ColumnView `json:"columns"`
}

func (l ColumnList) GetIDs() []string {
	ids := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		ids[i] = c.ID
	}
	return ids
}

func (l ColumnList) Human() string {
	if len(l.Columns) == 0 {
		return fmt.Sprintf("No columns on board '%s'", l.Board)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Columns on board '%s':", l.Board)
	for _, c := range l.Columns {
		fmt.Fprintf(&sb, "\n  %d. %s %d task(s)  %s", c.Order+1, c.chip(), c.TaskCount, styles.SubtitleStyle.Render(c.ID))
	}
	return sb.String()
}

// TaskView is the output shape of a task
type TaskView struct {
	ID           string `json:"id"`
	BoardID      string `json:"board_id"`
	Status       string `json:"status"`
	Column       string `json:"column,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	LinkedTaskID string `json:"linked_task_id,omitempty"`
}

// NewTaskView converts a task; column is the title of its status column
func NewTaskView(t *models.Task, column string) TaskView {
	v := TaskView{
		ID:          string(t.ID),
		BoardID:     string(t.BoardID),
		Status:      string(t.Status),
		Column:      column,
		Title:       t.Title,
		Description: t.Description,
	}
	if t.HasLink() {
		v.LinkedTaskID = string(*t.LinkedTaskID)
	}
	return v
}

func (v TaskView) GetID() string { return v.ID }

func (v TaskView) Human() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (ID: %s)", styles.SuccessStyle.Render("✓"), styles.TitleStyle.Render(v.Title), v.ID)
	if v.Column != "" {
		fmt.Fprintf(&sb, "\n  %s %s", styles.LabelStyle.Render("Column:"), v.Column)
	}
	if v.LinkedTaskID != "" {
		fmt.Fprintf(&sb, "\n  %s %s", styles.LabelStyle.Render("Linked to:"), v.LinkedTaskID)
	}
	return sb.String()
}

// TaskList is the output of task list
type TaskList struct {
	Board string     `json:"board"`
	Tasks []TaskView `json:"tasks"`
}

func (l TaskList) GetIDs() []string {
	ids := make([]string, len(l.Tasks))
	for i, t := range l.Tasks {
		ids[i] = t.ID
	}
	return ids
}

func (l TaskList) Human() string {
	if len(l.Tasks) == 0 {
		return fmt.Sprintf("No tasks on board '%s'", l.Board)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tasks on board '%s':", l.Board)
	for _, t := range l.Tasks {
		link := ""
		if t.LinkedTaskID != "" {
			link = styles.SubtitleStyle.Render(" -> " + t.LinkedTaskID)
		}
		fmt.Fprintf(&sb, "\n  [%s] %s%s  %s", t.Column, t.Title, link, styles.SubtitleStyle.Render(t.ID))
	}
	return sb.String()
}

// Result reports a write that produced no new entity
type Result struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (r Result) GetID() string { return r.ID }

func (r Result) Human() string {
	return styles.SuccessStyle.Render("✓") + " " + r.Message
}
