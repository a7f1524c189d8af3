package use

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// BoardCmd returns the use board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [board]",
		Short: "Set board context for current shell session",
		Long: `Set the current board using an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(tablero use board Roadmap)       # Use the board named Roadmap
  eval $(tablero use board --clear)       # Clear board context
  tablero use board --show                # Show current board

The TABLERO_BOARD environment variable is set in your current shell
session only. The --board flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseBoard,
	}

	cmd.Flags().Bool("clear", false, "Clear the current board context")
	cmd.Flags().Bool("show", false, "Show the current board context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := &cli.OutputFormatter{}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if showFlag {
		return showCurrentBoard(ctx, cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(stderr, "Would clear %s\n", cli.BoardEnv)
			return nil
		}
		fmt.Fprintf(stdout, "unset %s\n", cli.BoardEnv)
		fmt.Fprintln(stderr, "Cleared board context")
		return nil
	}

	if len(args) == 0 {
		return cli.Fail(formatter, &cli.UsageError{
			Message:    "board required",
			Suggestion: "eval $(tablero use board <board>)",
		})
	}

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	b, err := c.App.BoardService.Resolve(ctx, args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if dryRun {
		fmt.Fprintf(stderr, "Would set %s=%s (%s)\n", cli.BoardEnv, b.ID, b.Name)
		return nil
	}

	// stdout is for eval, everything else goes to stderr
	fmt.Fprintf(stdout, "export %s=%s\n", cli.BoardEnv, b.ID)
	fmt.Fprintf(stderr, "Now using board %s\n", b.Name)
	return nil
}

func showCurrentBoard(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	current := os.Getenv(cli.BoardEnv)
	if current == "" {
		fmt.Fprintln(out, "No board context set")
		fmt.Fprintln(out, "Use 'eval $(tablero use board <board>)' to set one")
		return nil
	}

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(&cli.OutputFormatter{}, err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	b, err := c.App.BoardService.Resolve(ctx, current)
	if err != nil {
		fmt.Fprintf(out, "Current board: %s (board not found)\n", current)
		return nil
	}

	fmt.Fprintf(out, "Current board: %s (%s)\n", b.Name, b.ID)
	return nil
}
