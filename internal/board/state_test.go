package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ============================================================================
// FIXTURES
// ============================================================================

const (
	todo  types.ColumnID = "todo"
	doing types.ColumnID = "doing"
	done  types.ColumnID = "done"
)

func fixtureColumns() []*models.Column {
	// deliberately out of order; Rebuild sorts by Order
	return []*models.Column{
		{ID: done, BoardID: "b", Title: "Done", Order: 2, Color: models.ColorGreen},
		{ID: todo, BoardID: "b", Title: "To Do", Order: 0, Color: models.ColorBlue},
		{ID: doing, BoardID: "b", Title: "Doing", Order: 1, Color: models.ColorYellow},
	}
}

func task(id string, status types.ColumnID) *models.Task {
	return &models.Task{ID: types.TaskID(id), BoardID: "b", Status: status, Title: "task " + id}
}

func newState(t *testing.T, tasks ...*models.Task) *State {
	t.Helper()
	s := New("b", nil)
	s.Rebuild(fixtureColumns(), tasks)
	return s
}

func laneIDs(s *State, col types.ColumnID) []types.TaskID {
	lane := s.Lane(col)
	ids := make([]types.TaskID, len(lane))
	for i, t := range lane {
		ids[i] = t.ID
	}
	return ids
}

// assertSingleLane checks that every task appears in exactly one lane with a matching status
func assertSingleLane(t *testing.T, s *State) {
	t.Helper()
	seen := map[types.TaskID]types.ColumnID{}
	for _, col := range s.ColumnIDs() {
		for _, task := range s.Lane(col) {
			prev, dup := seen[task.ID]
			assert.False(t, dup, "task %s in both %s and %s", task.ID, prev, col)
			assert.Equal(t, col, task.Status, "task %s status", task.ID)
			seen[task.ID] = col
		}
	}
}

// ============================================================================
// REBUILD / QUERIES
// ============================================================================

func TestRebuild_GroupsByStatus(t *testing.T) {
	s := newState(t, task("1", todo), task("2", doing), task("3", todo), task("4", done))

	assert.Equal(t, []types.ColumnID{todo, doing, done}, s.ColumnIDs())
	for i, c := range s.Columns() {
		assert.Equal(t, i, c.Order)
	}
	assert.Equal(t, []types.TaskID{"1", "3"}, laneIDs(s, todo))
	assert.Equal(t, []types.TaskID{"2"}, laneIDs(s, doing))
	assert.Equal(t, []types.TaskID{"4"}, laneIDs(s, done))
	assert.Empty(t, s.Orphans())
	assertSingleLane(t, s)
}

func TestRebuild_StaleStatusIsOrphaned(t *testing.T) {
	s := newState(t, task("1", todo), task("ghost", "deleted-column"))

	assert.Equal(t, []types.TaskID{"1"}, laneIDs(s, todo))
	_, _, found := s.Locate("ghost")
	assert.False(t, found)

	orphans := s.Orphans()
	require.Len(t, orphans, 1)
	assert.Equal(t, types.TaskID("ghost"), orphans[0].ID)
}

func TestRebuild_KeepsLaneOrderForKnownTasks(t *testing.T) {
	s := newState(t, task("1", todo), task("2", todo), task("3", todo))
	require.NoError(t, s.Apply(ReorderWithinColumn{ColumnID: todo, TaskID: "3", From: 2, To: 0}))

	s.Rebuild(fixtureColumns(), []*models.Task{task("1", todo), task("2", todo), task("3", todo), task("4", todo)})

	assert.Equal(t, []types.TaskID{"3", "1", "2", "4"}, laneIDs(s, todo))
}

func TestResolve(t *testing.T) {
	s := newState(t)

	got, ok := s.Resolve(doing)
	assert.True(t, ok)
	assert.Equal(t, doing, got)

	_, ok = s.Resolve("nope")
	assert.False(t, ok)
}

func TestLaneReturnsCopy(t *testing.T) {
	s := newState(t, task("1", todo))

	lane := s.Lane(todo)
	lane[0].Title = "changed"

	got, ok := s.Task("1")
	require.True(t, ok)
	assert.Equal(t, "task 1", got.Title)
}

// ============================================================================
// APPLY
// ============================================================================

func TestApply_MoveTask(t *testing.T) {
	s := newState(t, task("1", todo), task("2", doing), task("3", doing))

	err := s.Apply(MoveTask{TaskID: "1", Source: todo, Dest: doing, DestIndex: 1})
	require.NoError(t, err)

	assert.Empty(t, laneIDs(s, todo))
	assert.Equal(t, []types.TaskID{"2", "1", "3"}, laneIDs(s, doing))

	moved, ok := s.Task("1")
	require.True(t, ok)
	assert.Equal(t, doing, moved.Status)
	assertSingleLane(t, s)
}

func TestApply_MoveTaskClampsIndex(t *testing.T) {
	s := newState(t, task("1", todo), task("2", done))

	require.NoError(t, s.Apply(MoveTask{TaskID: "1", Source: todo, Dest: done, DestIndex: 99}))
	assert.Equal(t, []types.TaskID{"2", "1"}, laneIDs(s, done))

	require.NoError(t, s.Apply(MoveTask{TaskID: "1", Source: done, Dest: todo, DestIndex: -5}))
	assert.Equal(t, []types.TaskID{"1"}, laneIDs(s, todo))
}

func TestApply_MoveTaskErrorsLeaveStateUnchanged(t *testing.T) {
	s := newState(t, task("1", todo), task("2", doing))
	before := s.Snapshot()

	tests := []struct {
		name    string
		cmd     MoveTask
		wantErr error
	}{
		{"unknown source", MoveTask{TaskID: "1", Source: "x", Dest: doing}, ErrUnknownColumn},
		{"unknown dest", MoveTask{TaskID: "1", Source: todo, Dest: "x"}, ErrUnknownColumn},
		{"task not in source", MoveTask{TaskID: "2", Source: todo, Dest: done}, ErrUnknownTask},
		{"unknown task", MoveTask{TaskID: "9", Source: todo, Dest: done}, ErrUnknownTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Apply(tt.cmd)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrNotFound)
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

func TestApply_ReorderWithinColumn(t *testing.T) {
	s := newState(t, task("1", todo), task("2", todo), task("3", todo))

	require.NoError(t, s.Apply(ReorderWithinColumn{ColumnID: todo, TaskID: "1", From: 0, To: 2}))
	assert.Equal(t, []types.TaskID{"2", "3", "1"}, laneIDs(s, todo))

	// stale From index is corrected by id
	require.NoError(t, s.Apply(ReorderWithinColumn{ColumnID: todo, TaskID: "1", From: 0, To: 0}))
	assert.Equal(t, []types.TaskID{"1", "2", "3"}, laneIDs(s, todo))

	err := s.Apply(ReorderWithinColumn{ColumnID: todo, TaskID: "9", From: 0, To: 1})
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestApply_ReorderColumns(t *testing.T) {
	s := newState(t, task("1", todo))

	require.NoError(t, s.Apply(ReorderColumns{ColumnIDs: []types.ColumnID{todo, done, doing}}))

	assert.Equal(t, []types.ColumnID{todo, done, doing}, s.ColumnIDs())
	for i, c := range s.Columns() {
		assert.Equal(t, i, c.Order, "column %s", c.ID)
	}
	// lanes are unaffected
	assert.Equal(t, []types.TaskID{"1"}, laneIDs(s, todo))
}

func TestApply_ReorderColumnsInvalid(t *testing.T) {
	s := newState(t)
	before := s.Snapshot()

	for _, ids := range [][]types.ColumnID{
		{todo, doing},
		{todo, todo, done},
		{todo, doing, "x"},
	} {
		t.Run(fmt.Sprint(ids), func(t *testing.T) {
			err := s.Apply(ReorderColumns{ColumnIDs: ids})
			assert.ErrorIs(t, err, ErrInvalidColumnOrder)
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

type bogusCommand struct{}

func (bogusCommand) command()       {}
func (bogusCommand) String() string { return "bogus" }

func TestApply_UnknownCommand(t *testing.T) {
	s := newState(t)
	assert.ErrorIs(t, s.Apply(bogusCommand{}), ErrUnknownCommand)
}

// ============================================================================
// SNAPSHOTS
// ============================================================================

func TestCaptureRestore_MoveTask(t *testing.T) {
	linked := types.TaskID("2")
	t1 := task("1", todo)
	t1.LinkedTaskID = &linked
	s := newState(t, t1, task("2", doing), task("3", done))
	before := s.Snapshot()

	cmd := MoveTask{TaskID: "1", Source: todo, Dest: done, DestIndex: 0}
	snap := s.Capture(cmd)
	require.NoError(t, s.Apply(cmd))
	assert.NotEqual(t, before, s.Snapshot())

	s.Restore(snap)
	assert.Equal(t, before, s.Snapshot())
}

func TestCaptureRestore_ReorderColumns(t *testing.T) {
	s := newState(t, task("1", todo))
	before := s.Snapshot()

	cmd := ReorderColumns{ColumnIDs: []types.ColumnID{done, doing, todo}}
	snap := s.Capture(cmd)
	require.NoError(t, s.Apply(cmd))

	s.Restore(snap)
	assert.Equal(t, before, s.Snapshot())
}

func TestCapture_OnlyWhatTheCommandTouches(t *testing.T) {
	s := newState(t, task("1", todo), task("2", doing), task("3", done))

	snap := s.Capture(MoveTask{TaskID: "1", Source: todo, Dest: done})
	require.NotNil(t, snap.move)
	assert.Equal(t, todo, snap.move.column)
	assert.Zero(t, snap.move.index)
	assert.Empty(t, snap.lanes)
	assert.Nil(t, snap.columns)

	snap = s.Capture(ReorderWithinColumn{ColumnID: doing, TaskID: "2"})
	assert.Len(t, snap.lanes, 1)
	assert.Nil(t, snap.move)

	snap = s.Capture(ReorderColumns{ColumnIDs: s.ColumnIDs()})
	assert.Empty(t, snap.lanes)
	assert.Len(t, snap.columns, 3)
}

func TestRestore_MoveLeavesLaterMovesAlone(t *testing.T) {
	s := newState(t, task("1", todo), task("2", todo), task("3", todo))

	first := MoveTask{TaskID: "1", Source: todo, Dest: doing}
	firstSnap := s.Capture(first)
	require.NoError(t, s.Apply(first))

	second := MoveTask{TaskID: "2", Source: todo, Dest: done}
	require.NoError(t, s.Apply(second))

	// the first move is undone, the second stands
	s.Restore(firstSnap)

	assert.Equal(t, []types.TaskID{"1", "3"}, laneIDs(s, todo))
	assert.Empty(t, laneIDs(s, doing))
	assert.Equal(t, []types.TaskID{"2"}, laneIDs(s, done))
	assertSingleLane(t, s)
}

func TestRestore_MoveFindsCardMovedAgain(t *testing.T) {
	s := newState(t, task("1", todo), task("2", doing))

	first := MoveTask{TaskID: "1", Source: todo, Dest: doing, DestIndex: 0}
	snap := s.Capture(first)
	require.NoError(t, s.Apply(first))
	require.NoError(t, s.Apply(ReorderWithinColumn{ColumnID: doing, TaskID: "1", From: 0, To: 1}))

	s.Restore(snap)

	assert.Equal(t, []types.TaskID{"1"}, laneIDs(s, todo))
	assert.Equal(t, []types.TaskID{"2"}, laneIDs(s, doing))
	restored, ok := s.Task("1")
	require.True(t, ok)
	assert.Equal(t, todo, restored.Status)
}

func TestRestore_MoveToVanishedColumnOrphansCard(t *testing.T) {
	s := newState(t, task("1", todo))

	cmd := MoveTask{TaskID: "1", Source: todo, Dest: doing}
	snap := s.Capture(cmd)
	require.NoError(t, s.Apply(cmd))

	// a reload drops the source column while the write is in flight
	var columns []*models.Column
	for _, c := range fixtureColumns() {
		if c.ID != todo {
			columns = append(columns, c)
		}
	}
	moved := task("1", doing)
	s.Rebuild(columns, []*models.Task{moved})

	s.Restore(snap)

	assert.Empty(t, laneIDs(s, doing))
	require.Len(t, s.Orphans(), 1)
	assert.Equal(t, todo, s.Orphans()[0].Status)
}

func TestRestore_ColumnsKeepLaterReorder(t *testing.T) {
	s := newState(t)

	first := ReorderColumns{ColumnIDs: []types.ColumnID{doing, todo, done}}
	snap := s.Capture(first)
	require.NoError(t, s.Apply(first))

	later := []types.ColumnID{done, doing, todo}
	require.NoError(t, s.Apply(ReorderColumns{ColumnIDs: later}))

	s.Restore(snap)
	assert.Equal(t, later, s.ColumnIDs())
}

func TestRestore_RebasedReorderReturnsToOriginalOrder(t *testing.T) {
	s := newState(t)
	original := s.ColumnIDs()

	first := ReorderColumns{ColumnIDs: []types.ColumnID{doing, todo, done}}
	firstSnap := s.Capture(first)
	require.NoError(t, s.Apply(first))

	second := ReorderColumns{ColumnIDs: []types.ColumnID{done, doing, todo}}
	secondSnap := s.Capture(second)
	require.NoError(t, s.Apply(second))

	// the first never took effect, so undoing the second goes all the way back
	s.Restore(secondSnap.Rebase(firstSnap))
	assert.Equal(t, original, s.ColumnIDs())
}

func TestRestore_RebasedMoveReturnsToOriginalLane(t *testing.T) {
	s := newState(t, task("1", todo))
	before := s.Snapshot()

	first := MoveTask{TaskID: "1", Source: todo, Dest: doing}
	firstSnap := s.Capture(first)
	require.NoError(t, s.Apply(first))

	second := MoveTask{TaskID: "1", Source: doing, Dest: done}
	secondSnap := s.Capture(second)
	require.NoError(t, s.Apply(second))

	s.Restore(secondSnap.Rebase(firstSnap))
	assert.Equal(t, before, s.Snapshot())
}

func TestRestore_WithinColumnSkipsChangedLane(t *testing.T) {
	s := newState(t, task("1", todo), task("2", todo))

	cmd := ReorderWithinColumn{ColumnID: todo, TaskID: "2", From: 1, To: 0}
	snap := s.Capture(cmd)
	require.NoError(t, s.Apply(cmd))
	require.NoError(t, s.Apply(MoveTask{TaskID: "1", Source: todo, Dest: done}))

	s.Restore(snap)

	assert.Equal(t, []types.TaskID{"2"}, laneIDs(s, todo))
	assertSingleLane(t, s)
}

func TestRestore_FullSnapshot(t *testing.T) {
	s := newState(t, task("1", todo), task("2", doing))
	before := s.Snapshot()

	require.NoError(t, s.Apply(MoveTask{TaskID: "1", Source: todo, Dest: done}))
	require.NoError(t, s.Apply(ReorderColumns{ColumnIDs: []types.ColumnID{done, todo, doing}}))

	s.Restore(before)
	assert.Equal(t, before, s.Snapshot())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newState(t, task("1", todo))
	snap := s.Capture(MoveTask{TaskID: "1", Source: todo, Dest: doing})

	require.NoError(t, s.Apply(MoveTask{TaskID: "1", Source: todo, Dest: doing}))

	require.NotNil(t, snap.move)
	assert.Equal(t, todo, snap.move.task.Status, "snapshot must not observe later mutations")
}
