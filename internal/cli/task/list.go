package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks column by column",
		Long: `List the tasks of a board grouped by column, left to right.

Examples:
  tablero task list --board=Roadmap
  tablero task list --board=Roadmap --column=Done --quiet
`,
		RunE: handler.Command(runList),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Only list tasks in this column")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}

	var only types.ColumnID
	if args.Changed("column") {
		col, err := args.Parser.ParseColumn(ctx, b.ID, "column")
		if err != nil {
			return nil, err
		}
		only = col.ID
	}

	g, err := c.App.OpenBoard(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	out := cli.TaskList{Board: b.Name, Tasks: []cli.TaskView{}}
	for _, col := range g.Columns() {
		if only != "" && col.ID != only {
			continue
		}
		for _, t := range g.Lane(col.ID) {
			out.Tasks = append(out.Tasks, cli.NewTaskView(&t, col.Title))
		}
	}
	return out, nil
}
