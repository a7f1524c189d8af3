package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one task",
		RunE:  handler.Command(runShow),
	}

	cmd.Flags().String("task", "", "Task ID (required)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseTaskID("task")
	if err != nil {
		return nil, err
	}
	task, err := c.App.TaskService.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	column := ""
	if col, err := c.App.ColumnService.Get(ctx, task.Status); err == nil {
		column = col.Title
	}
	return cli.NewTaskView(task, column), nil
}
