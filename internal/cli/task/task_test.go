package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/testutil"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
	"github.com/thenoetrevino/tablero/internal/types"
)

func TestCreate_DefaultsToFirstColumn(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")

	out, err := clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"create", "--board", "Roadmap", "--title", "Write changelog", "--quiet"})
	require.NoError(t, err)

	task, err := repo.GetTaskByID(ctx, types.TaskID(strings.TrimSpace(out)))
	require.NoError(t, err)
	assert.Equal(t, "Write changelog", task.Title)
	assert.Equal(t, tb.Col("To Do"), task.Status)
}

func TestCreate_WithColumnAndLink(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	dep := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("To Do"), "dep")

	out, err := clitest.ExecuteCLICommand(t, testApp, TaskCmd(), []string{
		"create", "--board", "Roadmap", "--title", "Release",
		"--column", "In Progress", "--link", dep.ID.String(), "--json",
	})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Equal(t, tb.Col("In Progress").String(), data["status"])
	assert.Equal(t, "In Progress", data["column"])
	assert.Equal(t, dep.ID.String(), data["linked_task_id"])
}

func TestList_FollowsColumnOrder(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	done := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("Done"), "shipped")
	todo := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("To Do"), "planned")

	out, err := clitest.ExecuteCLICommand(t, testApp, TaskCmd(), []string{"list", "--board", "Roadmap", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{todo.ID.String(), done.ID.String()}, strings.Fields(out))

	out, err = clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"list", "--board", "Roadmap", "--column", "Done", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{done.ID.String()}, strings.Fields(out))
}

func TestMove(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	task := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("To Do"), "work")

	_, err := clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"move", "--board", "Roadmap", "--task", task.ID.String(), "--to", "Done", "--quiet"})
	require.NoError(t, err)

	status, err := repo.GetTaskStatus(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, tb.Col("Done"), status)
}

func TestMove_BlockedByDependency(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	dep := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("To Do"), "dep")
	task := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("In Progress"), "work")
	testutil.LinkTestTasks(t, repo, task.ID, dep.ID)

	out, err := clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"move", "--board", "Roadmap", "--task", task.ID.String(), "--to", "Done", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "DEPENDENCY_NOT_SATISFIED", result["error"].(map[string]any)["code"])

	status, err := repo.GetTaskStatus(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, tb.Col("In Progress"), status)
}

func TestMove_TaskOnAnotherBoard(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	testutil.CreateTestBoard(t, repo, "Roadmap")
	other := testutil.CreateTestBoard(t, repo, "Other")
	task := testutil.CreateTestTask(t, repo, other.ID(), other.Col("To Do"), "elsewhere")

	_, err := clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"move", "--board", "Roadmap", "--task", task.ID.String(), "--to", "Done", "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestLink(t *testing.T) {
	ctx := context.Background()
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	a := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("To Do"), "a")
	b := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("To Do"), "b")

	_, err := clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"link", "--task", a.ID.String(), "--to", b.ID.String(), "--quiet"})
	require.NoError(t, err)

	got, err := repo.GetTaskByID(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.HasLink())
	assert.Equal(t, b.ID, *got.LinkedTaskID)

	_, err = clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"link", "--task", b.ID.String(), "--to", a.ID.String(), "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"link", "--task", a.ID.String(), "--clear", "--quiet"})
	require.NoError(t, err)

	got, err = repo.GetTaskByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.HasLink())
}

func TestDelete_Force(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	task := testutil.CreateTestTask(t, repo, tb.ID(), tb.Col("To Do"), "gone")

	_, err := clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"delete", "--task", task.ID.String(), "--force", "--quiet"})
	require.NoError(t, err)

	_, err = clitest.ExecuteCLICommand(t, testApp, TaskCmd(),
		[]string{"show", "--task", task.ID.String(), "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
