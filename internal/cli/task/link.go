package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// LinkCmd returns the task link subcommand
func LinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Make a task depend on another",
		Long: `A linked task cannot enter the terminal column until the task it
depends on is there. Each task has at most one dependency.

Examples:
  tablero task link --task=<task-id> --to=<dependency-id>
  tablero task link --task=<task-id> --clear
`,
		RunE: handler.Command(runLink),
	}

	cmd.Flags().String("task", "", "Task ID (required)")
	cmd.Flags().String("to", "", "ID of the task to depend on")
	cmd.Flags().Bool("clear", false, "Remove the dependency")
	cmd.MarkFlagsMutuallyExclusive("to", "clear")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLink(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseTaskID("task")
	if err != nil {
		return nil, err
	}

	if args.GetBool("clear") {
		if err := c.App.TaskService.Unlink(ctx, id); err != nil {
			return nil, err
		}
		return cli.Result{ID: string(id), Message: fmt.Sprintf("Task %s no longer depends on another task", id)}, nil
	}

	dep, err := args.Parser.ParseTaskID("to")
	if err != nil {
		return nil, err
	}
	if err := c.App.TaskService.Link(ctx, id, dep); err != nil {
		return nil, err
	}
	return cli.Result{ID: string(id), Message: fmt.Sprintf("Task %s now depends on %s", id, dep)}, nil
}
