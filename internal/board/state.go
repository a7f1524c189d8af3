// Package board holds the in-memory view of a board: its columns in order and the
// cards grouped into one lane per column. Nothing here is persisted.
package board

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// State is the derived board view. It is not safe for concurrent use; the
// persistence gate serializes access to it.
type State struct {
	boardID types.BoardID
	columns []*models.Column
	lanes   map[types.ColumnID][]models.Task
	orphans []models.Task
	logger  *slog.Logger
}

// New returns an empty state for a board
func New(boardID types.BoardID, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		boardID: boardID,
		lanes:   make(map[types.ColumnID][]models.Task),
		logger:  logger,
	}
}

// BoardID returns the board this state belongs to
func (s *State) BoardID() types.BoardID {
	return s.boardID
}

// Rebuild regroups tasks under the given columns. Cards already on the board keep
// their relative lane order; new cards follow in input order. Tasks whose status
// names no live column are set aside as orphans.
func (s *State) Rebuild(columns []*models.Column, tasks []*models.Task) {
	sorted := make([]*models.Column, len(columns))
	for i, c := range columns {
		sorted[i] = c.Clone()
	}
	slices.SortStableFunc(sorted, func(a, b *models.Column) int { return a.Order - b.Order })

	previous := make(map[types.TaskID]int)
	for _, lane := range s.lanes {
		for i, t := range lane {
			previous[t.ID] = i
		}
	}

	s.columns = sorted
	s.lanes = make(map[types.ColumnID][]models.Task, len(sorted))
	for _, c := range sorted {
		s.lanes[c.ID] = []models.Task{}
	}
	s.orphans = nil

	for _, t := range tasks {
		if t == nil {
			continue
		}
		if _, ok := s.Resolve(t.Status); !ok {
			s.logger.Warn("task status names no column, leaving it off the board",
				"board_id", s.boardID, "task_id", t.ID, "status", t.Status)
			s.orphans = append(s.orphans, t.Clone())
			continue
		}
		s.lanes[t.Status] = append(s.lanes[t.Status], t.Clone())
	}

	for id, lane := range s.lanes {
		slices.SortStableFunc(lane, func(a, b models.Task) int {
			ia, okA := previous[a.ID]
			ib, okB := previous[b.ID]
			switch {
			case okA && okB:
				return ia - ib
			case okA:
				return -1
			case okB:
				return 1
			default:
				return 0
			}
		})
		s.lanes[id] = lane
	}
}

// Resolve validates a status against the live columns
func (s *State) Resolve(status types.ColumnID) (types.ColumnID, bool) {
	_, ok := s.lanes[status]
	if !ok {
		return "", false
	}
	return status, true
}

// Columns returns copies of the columns in left-to-right order
func (s *State) Columns() []*models.Column {
	return cloneColumns(s.columns)
}

// ColumnIDs returns the column ids in left-to-right order
func (s *State) ColumnIDs() []types.ColumnID {
	ids := make([]types.ColumnID, len(s.columns))
	for i, c := range s.columns {
		ids[i] = c.ID
	}
	return ids
}

// Column returns a copy of one column
func (s *State) Column(id types.ColumnID) (*models.Column, bool) {
	for _, c := range s.columns {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return nil, false
}

// Lane returns a copy of the cards in a column, top to bottom
func (s *State) Lane(id types.ColumnID) []models.Task {
	return cloneLane(s.lanes[id])
}

// Locate finds the column and index holding a task
func (s *State) Locate(taskID types.TaskID) (types.ColumnID, int, bool) {
	for _, c := range s.columns {
		for i, t := range s.lanes[c.ID] {
			if t.ID == taskID {
				return c.ID, i, true
			}
		}
	}
	return "", -1, false
}

// Task returns a copy of a task on the board
func (s *State) Task(taskID types.TaskID) (models.Task, bool) {
	col, idx, ok := s.Locate(taskID)
	if !ok {
		return models.Task{}, false
	}
	return s.lanes[col][idx].Clone(), true
}

// Orphans returns the tasks left off the board at the last Rebuild
func (s *State) Orphans() []models.Task {
	return cloneLane(s.orphans)
}

// Apply mutates the state according to cmd. On error the state is unchanged.
func (s *State) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case MoveTask:
		return s.moveTask(c)
	case ReorderWithinColumn:
		return s.reorderWithin(c)
	case ReorderColumns:
		return s.reorderColumns(c)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func (s *State) moveTask(c MoveTask) error {
	src, ok := s.lanes[c.Source]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, c.Source)
	}
	dst, ok := s.lanes[c.Dest]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, c.Dest)
	}

	idx := indexOfTask(src, c.TaskID)
	if idx < 0 {
		return fmt.Errorf("%w: %s not in column %s", ErrUnknownTask, c.TaskID, c.Source)
	}

	if c.Source == c.Dest {
		return s.reorderWithin(ReorderWithinColumn{ColumnID: c.Source, TaskID: c.TaskID, From: idx, To: c.DestIndex})
	}

	task := src[idx]
	task.Status = c.Dest

	s.lanes[c.Source] = slices.Delete(slices.Clone(src), idx, idx+1)
	s.lanes[c.Dest] = slices.Insert(slices.Clone(dst), clamp(c.DestIndex, 0, len(dst)), task)
	return nil
}

func (s *State) reorderWithin(c ReorderWithinColumn) error {
	lane, ok := s.lanes[c.ColumnID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, c.ColumnID)
	}

	from := c.From
	if from < 0 || from >= len(lane) || lane[from].ID != c.TaskID {
		// Index is stale, trust the id
		from = indexOfTask(lane, c.TaskID)
	}
	if from < 0 {
		return fmt.Errorf("%w: %s not in column %s", ErrUnknownTask, c.TaskID, c.ColumnID)
	}

	to := clamp(c.To, 0, len(lane)-1)
	if from == to {
		return nil
	}

	task := lane[from]
	next := slices.Delete(slices.Clone(lane), from, from+1)
	s.lanes[c.ColumnID] = slices.Insert(next, to, task)
	return nil
}

func (s *State) reorderColumns(c ReorderColumns) error {
	if len(c.ColumnIDs) != len(s.columns) {
		return fmt.Errorf("%w: got %d ids for %d columns", ErrInvalidColumnOrder, len(c.ColumnIDs), len(s.columns))
	}

	byID := make(map[types.ColumnID]*models.Column, len(s.columns))
	for _, col := range s.columns {
		byID[col.ID] = col
	}

	reordered := make([]*models.Column, 0, len(c.ColumnIDs))
	for i, id := range c.ColumnIDs {
		col, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: unknown or repeated column %s", ErrInvalidColumnOrder, id)
		}
		delete(byID, id)
		moved := col.Clone()
		moved.Order = i
		reordered = append(reordered, moved)
	}

	s.columns = reordered
	return nil
}

func indexOfTask(lane []models.Task, id types.TaskID) int {
	return slices.IndexFunc(lane, func(t models.Task) bool { return t.ID == id })
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cloneLane(lane []models.Task) []models.Task {
	out := make([]models.Task, len(lane))
	for i, t := range lane {
		out[i] = t.Clone()
	}
	return out
}
