package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

func TestGetColumnsByBoard_SortedByOrder(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	board, seeded := seedBoard(t, repo, "Todo", "Doing", "Done")

	columns, err := repo.GetColumnsByBoard(context.Background(), board.ID)
	require.NoError(t, err)
	require.Len(t, columns, 3)

	for i, col := range columns {
		assert.Equal(t, seeded[i].ID, col.ID)
		assert.Equal(t, i, col.Order)
		assert.Equal(t, board.ID, col.BoardID)
		assert.Equal(t, models.ColorBlue, col.Color)
	}
}

func TestGetColumnsByBoard_EmptyBoard(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	board, _ := seedBoard(t, repo)

	columns, err := repo.GetColumnsByBoard(context.Background(), board.ID)
	require.NoError(t, err)
	assert.Empty(t, columns)
}

func TestAppendColumn_OrderIsCount(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	board, _ := seedBoard(t, repo, "Todo", "Done")

	col := &models.Column{ID: types.NewColumnID(), BoardID: board.ID, Title: "Review", Color: models.ColorPink}
	require.NoError(t, repo.AppendColumn(context.Background(), col))
	assert.Equal(t, 2, col.Order)

	stored, err := repo.GetColumnByID(context.Background(), col.ID)
	require.NoError(t, err)
	assert.Equal(t, "Review", stored.Title)
	assert.Equal(t, 2, stored.Order)
	assert.False(t, stored.IsDefault)
}

func TestGetColumnByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetColumnByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateColumnTitleAndColor(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	_, cols := seedBoard(t, repo, "Todo")
	ctx := context.Background()

	require.NoError(t, repo.UpdateColumnTitle(ctx, cols[0].ID, "Backlog"))
	require.NoError(t, repo.UpdateColumnColor(ctx, cols[0].ID, models.ColorGreen))

	stored, err := repo.GetColumnByID(ctx, cols[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Backlog", stored.Title)
	assert.Equal(t, models.ColorGreen, stored.Color)

	assert.ErrorIs(t, repo.UpdateColumnTitle(ctx, "missing", "x"), models.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateColumnColor(ctx, "missing", models.ColorRed), models.ErrNotFound)
}

func TestDeleteColumn_CompactsOrder(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	board, cols := seedBoard(t, repo, "A", "B", "C", "D")

	require.NoError(t, repo.DeleteColumn(context.Background(), cols[1].ID))

	assert.Equal(t, map[string]int{"A": 0, "C": 1, "D": 2}, columnOrders(t, repo, board.ID))

	// A subsequent append lands at the new count without colliding
	col := &models.Column{ID: types.NewColumnID(), BoardID: board.ID, Title: "E", Color: models.ColorRed}
	require.NoError(t, repo.AppendColumn(context.Background(), col))
	assert.Equal(t, 3, col.Order)
}

func TestDeleteColumn_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	err := repo.DeleteColumn(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteColumn_RefusesColumnWithTasks(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	board, cols := seedBoard(t, repo, "A", "B")
	seedTask(t, repo, board.ID, cols[1].ID, "still here")

	err := repo.DeleteColumn(context.Background(), cols[1].ID)
	assert.ErrorIs(t, err, ErrColumnNotEmpty)

	assert.Equal(t, map[string]int{"A": 0, "B": 1}, columnOrders(t, repo, board.ID))
}

func TestUpdateColumnOrders_AdjacentSwap(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	board, cols := seedBoard(t, repo, "A", "B", "C")

	err := repo.UpdateColumnOrders(context.Background(), board.ID, map[types.ColumnID]int{
		cols[1].ID: 2,
		cols[2].ID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 0, "C": 1, "B": 2}, columnOrders(t, repo, board.ID))
}

func TestUpdateColumnOrders_FullRotation(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	board, cols := seedBoard(t, repo, "A", "B", "C", "D")

	// Drag A to the far right: every order changes
	err := repo.UpdateColumnOrders(context.Background(), board.ID, map[types.ColumnID]int{
		cols[0].ID: 3,
		cols[1].ID: 0,
		cols[2].ID: 1,
		cols[3].ID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"B": 0, "C": 1, "D": 2, "A": 3}, columnOrders(t, repo, board.ID))
}

func TestUpdateColumnOrders_UnknownColumnRollsBack(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	board, cols := seedBoard(t, repo, "A", "B")

	err := repo.UpdateColumnOrders(context.Background(), board.ID, map[types.ColumnID]int{
		cols[0].ID: 1,
		"missing":  0,
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, columnOrders(t, repo, board.ID))
}
