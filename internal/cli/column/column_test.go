package column

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
	"github.com/thenoetrevino/tablero/internal/types"
)

func titles(t *testing.T, columns []*models.Column) []string {
	t.Helper()
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Title
	}
	return out
}

func TestList_JSON(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("In Progress"), "one")
	testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("In Progress"), "two")

	out, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), []string{"list", "--board", "Roadmap", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	columns := data["columns"].([]any)
	require.Len(t, columns, 3)

	middle := columns[1].(map[string]any)
	assert.Equal(t, "In Progress", middle["title"])
	assert.Equal(t, float64(2), middle["task_count"])
	assert.Equal(t, true, columns[2].(map[string]any)["terminal"])
}

func TestCreate_AppendsAtRightEdge(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")

	out, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"create", "--board", "Roadmap", "--title", "Review", "--quiet"})
	require.NoError(t, err)

	col, err := repo.GetColumnByID(ctx, types.ColumnID(strings.TrimSpace(out)))
	require.NoError(t, err)
	assert.Equal(t, "Review", col.Title)
	assert.Equal(t, 3, col.Order)
	assert.True(t, col.Color.Valid())
	assert.Equal(t, tb.ID(), col.BoardID)
}

func TestRename(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")

	_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"rename", "--board", "Roadmap", "--column", "In Progress", "--title", "Doing", "--quiet"})
	require.NoError(t, err)

	col, err := repo.GetColumnByID(context.Background(), tb.Col("In Progress"))
	require.NoError(t, err)
	assert.Equal(t, "Doing", col.Title)
}

func TestRename_EmptyTitle(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	testutil.CreateTestBoard(t, repo, "Roadmap")

	_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"rename", "--board", "Roadmap", "--column", "Done", "--title", "  ", "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRecolor(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")

	_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"recolor", "--board", "Roadmap", "--column", "Done", "--color", "purple", "--quiet"})
	require.NoError(t, err)

	col, err := repo.GetColumnByID(ctx, tb.Col("Done"))
	require.NoError(t, err)
	assert.Equal(t, models.ColorPurple, col.Color)

	_, err = clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"recolor", "--board", "Roadmap", "--column", "Done", "--color", "chartreuse", "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	review := testutil.CreateTestColumn(t, repo, tb.ID(), "Review")

	t.Run("default column is protected", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
			[]string{"delete", "--board", "Roadmap", "--column", "To Do", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("column with tasks is refused", func(t *testing.T) {
		task := testutil.CreateTestTask(t, repo, tb.ID(), review.ID, "wip")
		_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
			[]string{"delete", "--board", "Roadmap", "--column", "Review", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		require.NoError(t, repo.DeleteTask(ctx, task.ID))
	})

	t.Run("empty column is deleted", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
			[]string{"delete", "--board", "Roadmap", "--column", "Review", "--quiet"})
		require.NoError(t, err)

		columns, err := repo.GetColumnsByBoard(ctx, tb.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"To Do", "In Progress", "Done"}, titles(t, columns))
	})
}

func TestMove(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")

	_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"move", "--board", "Roadmap", "--column", "Done", "--direction", "left", "--quiet"})
	require.NoError(t, err)

	columns, err := repo.GetColumnsByBoard(ctx, tb.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"To Do", "Done", "In Progress"}, titles(t, columns))

	// at the edge nothing changes
	_, err = clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"move", "--board", "Roadmap", "--column", "To Do", "--direction", "left", "--quiet"})
	require.NoError(t, err)

	columns, err = repo.GetColumnsByBoard(ctx, tb.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"To Do", "Done", "In Progress"}, titles(t, columns))
}

func TestMove_BadDirection(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	testutil.CreateTestBoard(t, repo, "Roadmap")

	_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"move", "--board", "Roadmap", "--column", "Done", "--direction", "up", "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestReorder(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")

	_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"reorder", "--board", "Roadmap", "--order", "Done, In Progress, To Do", "--quiet"})
	require.NoError(t, err)

	columns, err := repo.GetColumnsByBoard(ctx, tb.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"Done", "In Progress", "To Do"}, titles(t, columns))
	for i, c := range columns {
		assert.Equal(t, i, c.Order)
	}
}

func TestReorder_Incomplete(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")

	_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"reorder", "--board", "Roadmap", "--order", "Done,To Do", "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	columns, err := repo.GetColumnsByBoard(ctx, tb.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"To Do", "In Progress", "Done"}, titles(t, columns))
}
