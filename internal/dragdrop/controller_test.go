package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

func newBoard(t *testing.T) *board.State {
	t.Helper()
	s := board.New("b", nil)
	s.Rebuild(
		[]*models.Column{
			{ID: "a", BoardID: "b", Title: "A", Order: 0},
			{ID: "b", BoardID: "b", Title: "B", Order: 1},
			{ID: "c", BoardID: "b", Title: "C", Order: 2},
		},
		[]*models.Task{
			{ID: "t1", BoardID: "b", Status: "a"},
			{ID: "t2", BoardID: "b", Status: "a"},
			{ID: "t3", BoardID: "b", Status: "b"},
		},
	)
	return s
}

func TestColumnDrag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		column types.ColumnID
		to     int
		want   board.Command
	}{
		{"swap right", "b", 2, board.ReorderColumns{ColumnIDs: []types.ColumnID{"a", "c", "b"}}},
		{"to front", "c", 0, board.ReorderColumns{ColumnIDs: []types.ColumnID{"c", "a", "b"}}},
		{"past the end clamps", "a", 10, board.ReorderColumns{ColumnIDs: []types.ColumnID{"b", "c", "a"}}},
		{"same index is a no-op", "b", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New(newBoard(t), nil)
			require.NoError(t, c.StartColumnDrag(tt.column))

			cmd, err := c.Drop(Location{Index: tt.to})
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, cmd)
			} else {
				assert.Equal(t, tt.want, cmd)
			}

			_, active := c.Active()
			assert.False(t, active)
		})
	}
}

func TestTaskDrag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		task types.TaskID
		dest Location
		want board.Command
	}{
		{
			name: "other column is a move",
			task: "t1",
			dest: Location{ColumnID: "c", Index: 0},
			want: board.MoveTask{TaskID: "t1", Source: "a", Dest: "c", DestIndex: 0},
		},
		{
			name: "same column different index reorders",
			task: "t1",
			dest: Location{ColumnID: "a", Index: 1},
			want: board.ReorderWithinColumn{ColumnID: "a", TaskID: "t1", From: 0, To: 1},
		},
		{
			name: "same column same index is a no-op",
			task: "t2",
			dest: Location{ColumnID: "a", Index: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New(newBoard(t), nil)
			require.NoError(t, c.StartTaskDrag(tt.task))

			cmd, err := c.Drop(tt.dest)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, cmd)
			} else {
				assert.Equal(t, tt.want, cmd)
			}
		})
	}
}

func TestHoverThenDropHovered(t *testing.T) {
	t.Parallel()
	c := New(newBoard(t), nil)

	require.NoError(t, c.StartTaskDrag("t3"))
	require.NoError(t, c.Hover(Location{ColumnID: "a", Index: 2}))
	require.NoError(t, c.Hover(Location{ColumnID: "c", Index: 0}))

	g, active := c.Active()
	require.True(t, active)
	assert.Equal(t, TaskDrag, g.Kind)
	assert.Equal(t, Location{ColumnID: "b", Index: 0}, g.Origin)
	assert.Equal(t, Location{ColumnID: "c", Index: 0}, g.Hover)

	cmd, err := c.DropHovered()
	require.NoError(t, err)
	assert.Equal(t, board.MoveTask{TaskID: "t3", Source: "b", Dest: "c", DestIndex: 0}, cmd)
}

func TestDropWithoutDestinationCancels(t *testing.T) {
	t.Parallel()
	c := New(newBoard(t), nil)

	require.NoError(t, c.StartTaskDrag("t1"))
	cmd, err := c.Drop(NoDestination)
	assert.NoError(t, err)
	assert.Nil(t, cmd)

	_, active := c.Active()
	assert.False(t, active)
}

func TestOneGestureAtATime(t *testing.T) {
	t.Parallel()
	c := New(newBoard(t), nil)

	require.NoError(t, c.StartTaskDrag("t1"))
	assert.ErrorIs(t, c.StartTaskDrag("t2"), ErrGestureInFlight)
	assert.ErrorIs(t, c.StartColumnDrag("a"), ErrGestureInFlight)

	c.Cancel()
	assert.NoError(t, c.StartColumnDrag("a"))
}

func TestNoGesture(t *testing.T) {
	t.Parallel()
	c := New(newBoard(t), nil)

	assert.ErrorIs(t, c.Hover(Location{ColumnID: "a"}), ErrNoGesture)
	_, err := c.Drop(Location{ColumnID: "a"})
	assert.ErrorIs(t, err, ErrNoGesture)
	_, err = c.DropHovered()
	assert.ErrorIs(t, err, ErrNoGesture)

	c.Cancel() // harmless
}

func TestUnknownTargets(t *testing.T) {
	t.Parallel()
	c := New(newBoard(t), nil)

	assert.ErrorIs(t, c.StartColumnDrag("zzz"), board.ErrUnknownColumn)
	assert.ErrorIs(t, c.StartTaskDrag("nope"), board.ErrUnknownTask)
	_, active := c.Active()
	assert.False(t, active)

	require.NoError(t, c.StartTaskDrag("t1"))
	_, err := c.Drop(Location{ColumnID: "zzz", Index: 0})
	assert.ErrorIs(t, err, board.ErrUnknownColumn)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, active = c.Active()
	assert.False(t, active, "a failed drop still ends the gesture")
}

func TestDropAfterBoardReload(t *testing.T) {
	t.Parallel()
	s := newBoard(t)
	c := New(s, nil)

	require.NoError(t, c.StartTaskDrag("t1"))

	// another view moved t1 to b meanwhile
	require.NoError(t, s.Apply(board.MoveTask{TaskID: "t1", Source: "a", Dest: "b", DestIndex: 0}))

	cmd, err := c.Drop(Location{ColumnID: "c", Index: 0})
	require.NoError(t, err)
	assert.Equal(t, board.MoveTask{TaskID: "t1", Source: "b", Dest: "c", DestIndex: 0}, cmd)
}
