// Package cmd assembles the tablero command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/column"
	"github.com/thenoetrevino/tablero/internal/cli/task"
	"github.com/thenoetrevino/tablero/internal/cli/use"
	"github.com/thenoetrevino/tablero/internal/launcher"
)

// NewRootCmd builds the full command tree. Without a subcommand it opens the
// interactive board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - a terminal kanban board",
		Long: `Tablero is a terminal kanban board. Run it without arguments to open the
interactive board, or use the board, column and task commands for scripting.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runTUI,
	}
	cli.AddBoardFlag(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	cli.AddBoardFlag(tuiCmd)
	rootCmd.AddCommand(tuiCmd)

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(use.UseCmd())

	return rootCmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	ref, _ := cmd.Flags().GetString("board")
	if ref == "" {
		ref = os.Getenv(cli.BoardEnv)
	}
	return launcher.Launch(ref)
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// Commands print their own failures; anything else came from cobra or the launcher
	var exitErr *cli.CodedError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}
