package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
	"github.com/thenoetrevino/tablero/internal/types"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a task in a column (the leftmost column by default).

Examples:
  # Create a task in the first column
  tablero task create --board=Roadmap --title="Write changelog"

  # Create a task that depends on another
  tablero task create --board=Roadmap --title="Release" --column="To Do" --link=<task-id>

  # Quiet mode for bash capture
  TASK_ID=$(tablero task create --board=Roadmap --title="Write changelog" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("column", "", "Column ID or title (default: first column)")
	cmd.Flags().String("description", "", "Task description (markdown)")
	cmd.Flags().String("link", "", "ID of a task this one depends on")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}
	title, err := args.Parser.ParseString("title")
	if err != nil {
		return nil, err
	}

	var col *models.Column
	if args.Changed("column") {
		col, err = args.Parser.ParseColumn(ctx, b.ID, "column")
	} else {
		col, err = firstColumn(ctx, c, b.ID)
	}
	if err != nil {
		return nil, err
	}

	req := taskservice.CreateTaskRequest{
		BoardID:     b.ID,
		Status:      col.ID,
		Title:       title,
		Description: args.GetString("description"),
	}
	if link := args.GetString("link"); link != "" {
		id := types.TaskID(link)
		req.LinkedTo = &id
	}

	task, err := c.App.TaskService.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return cli.NewTaskView(task, col.Title), nil
}

func firstColumn(ctx context.Context, c *cli.CLI, boardID types.BoardID) (*models.Column, error) {
	columns, err := c.App.ColumnService.List(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, &cli.UsageError{
			Message:    "board has no columns",
			Suggestion: "create one with: tablero column create --title <title>",
		}
	}
	return columns[0], nil
}
