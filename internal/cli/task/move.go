package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another column",
		Long: `Move a task into a column. Moves into the board's terminal column are
refused while the task's dependency has not reached it.

Examples:
  tablero task move --board=Roadmap --task=<task-id> --to=Done
  tablero task move --board=Roadmap --task=<task-id> --to="In Progress" --index=0
`,
		RunE: handler.Command(runMove),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("task", "", "Task ID (required)")
	cmd.Flags().String("to", "", "Destination column ID or title (required)")
	cmd.Flags().Int("index", -1, "Position in the destination column (default: bottom)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}
	id, err := args.Parser.ParseTaskID("task")
	if err != nil {
		return nil, err
	}
	dest, err := args.Parser.ParseColumn(ctx, b.ID, "to")
	if err != nil {
		return nil, err
	}

	g, err := c.App.OpenBoard(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	source, _, ok := g.Locate(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not on board '%s'", board.ErrUnknownTask, id, b.Name)
	}

	index := args.GetInt("index")
	if index < 0 {
		index = len(g.Lane(dest.ID))
	}

	cmd := board.MoveTask{TaskID: id, Source: source, Dest: dest.ID, DestIndex: index}
	if err := g.Dispatch(ctx, cmd).Wait(); err != nil {
		return nil, err
	}
	g.Wait()

	task, _ := g.Task(id)
	return cli.NewTaskView(&task, dest.Title), nil
}
