package use

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/testutil"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func run(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	cmd := UseCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestUseBoard_Export(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	ctx := cli.WithApp(context.Background(), testApp)

	stdout, stderr, err := run(t, ctx, "board", "roadmap")
	require.NoError(t, err)
	assert.Equal(t, "export TABLERO_BOARD="+tb.ID().String()+"\n", stdout)
	assert.Contains(t, stderr, "Roadmap")
}

func TestUseBoard_DryRun(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	testutil.CreateTestBoard(t, repo, "Roadmap")
	ctx := cli.WithApp(context.Background(), testApp)

	stdout, stderr, err := run(t, ctx, "board", "Roadmap", "--dry-run")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Would set TABLERO_BOARD=")
}

func TestUseBoard_Clear(t *testing.T) {
	stdout, _, err := run(t, context.Background(), "board", "--clear")
	require.NoError(t, err)
	assert.Equal(t, "unset TABLERO_BOARD\n", stdout)
}

func TestUseBoard_Unknown(t *testing.T) {
	_, testApp := clitest.SetupCLITest(t)
	ctx := cli.WithApp(context.Background(), testApp)

	_, _, err := run(t, ctx, "board", "missing")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestUseBoard_Show(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	tb := testutil.CreateTestBoard(t, repo, "Roadmap")
	ctx := cli.WithApp(context.Background(), testApp)

	t.Setenv(cli.BoardEnv, "")
	stdout, _, err := run(t, ctx, "board", "--show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No board context set")

	t.Setenv(cli.BoardEnv, tb.ID().String())
	stdout, _, err = run(t, ctx, "board", "--show")
	require.NoError(t, err)
	assert.Equal(t, "Current board: Roadmap ("+tb.ID().String()+")\n", stdout)
}
