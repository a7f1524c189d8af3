package board

import (
	"slices"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Snapshot is a deep copy of the part of a State that a command can change.
// A full snapshot (from State.Snapshot) covers everything. A snapshot from Capture
// holds just enough to undo that one command, so later commands survive a Restore.
type Snapshot struct {
	full    bool
	columns []*models.Column // nil when the command does not touch columns
	lanes   map[types.ColumnID][]models.Task
	orphans []models.Task

	move     *moveOrigin
	produced []types.ColumnID // column order left behind by a ReorderColumns
}

// moveOrigin is where a moved card sat before the move
type moveOrigin struct {
	task   models.Task
	column types.ColumnID
	index  int
}

// Snapshot captures the whole state
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		full:    true,
		columns: s.Columns(),
		lanes:   make(map[types.ColumnID][]models.Task, len(s.lanes)),
		orphans: cloneLane(s.orphans),
	}
	for id, lane := range s.lanes {
		snap.lanes[id] = cloneLane(lane)
	}
	return snap
}

// Capture records what is needed to undo cmd: the card's origin for a move, its
// lane for a within-column reorder, the column list for a column reorder.
func (s *State) Capture(cmd Command) Snapshot {
	snap := Snapshot{lanes: make(map[types.ColumnID][]models.Task)}

	switch c := cmd.(type) {
	case MoveTask:
		if col, idx, ok := s.Locate(c.TaskID); ok {
			snap.move = &moveOrigin{task: s.lanes[col][idx].Clone(), column: col, index: idx}
		}
	case ReorderWithinColumn:
		if lane, ok := s.lanes[c.ColumnID]; ok {
			snap.lanes[c.ColumnID] = cloneLane(lane)
		}
	case ReorderColumns:
		snap.columns = s.Columns()
		snap.produced = slices.Clone(c.ColumnIDs)
	}
	return snap
}

// Rebase returns s with its starting point taken from base. It is used when the
// command base was captured for never took effect, so the command s was captured
// for really started from base's state. What s's own command produced is kept.
func (s Snapshot) Rebase(base Snapshot) Snapshot {
	if base.move != nil {
		s.move = base.move
	}
	if base.columns != nil {
		s.columns = base.columns
	}
	return s
}

// Restore undoes what the snapshot recorded. A full snapshot replaces everything.
// A captured move puts only that card back where it came from; a captured column
// reorder is undone only while the columns are still in the order it produced.
func (s *State) Restore(snap Snapshot) {
	if snap.full {
		s.columns = cloneColumns(snap.columns)
		s.lanes = make(map[types.ColumnID][]models.Task, len(snap.lanes))
		for id, lane := range snap.lanes {
			s.lanes[id] = cloneLane(lane)
		}
		s.orphans = cloneLane(snap.orphans)
		return
	}

	if snap.move != nil {
		s.returnCard(*snap.move)
	}
	if snap.columns != nil && slices.Equal(s.ColumnIDs(), snap.produced) {
		s.columns = cloneColumns(snap.columns)
	}
	for id, lane := range snap.lanes {
		if current, ok := s.lanes[id]; ok && sameTasks(current, lane) {
			s.lanes[id] = cloneLane(lane)
		}
	}
}

// returnCard takes a card out of wherever it is now and reinserts it at its origin
func (s *State) returnCard(origin moveOrigin) {
	if col, idx, ok := s.Locate(origin.task.ID); ok {
		s.lanes[col] = slices.Delete(slices.Clone(s.lanes[col]), idx, idx+1)
	} else if idx := indexOfTask(s.orphans, origin.task.ID); idx >= 0 {
		s.orphans = slices.Delete(slices.Clone(s.orphans), idx, idx+1)
	}

	task := origin.task.Clone()
	lane, ok := s.lanes[origin.column]
	if !ok {
		s.orphans = append(s.orphans, task)
		return
	}
	s.lanes[origin.column] = slices.Insert(slices.Clone(lane), clamp(origin.index, 0, len(lane)), task)
}

// sameTasks reports whether two lanes hold the same cards in any order
func sameTasks(a, b []models.Task) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[types.TaskID]bool, len(a))
	for _, t := range a {
		ids[t.ID] = true
	}
	for _, t := range b {
		if !ids[t.ID] {
			return false
		}
	}
	return true
}

func cloneColumns(columns []*models.Column) []*models.Column {
	out := make([]*models.Column, len(columns))
	for i, c := range columns {
		out[i] = c.Clone()
	}
	return out
}
