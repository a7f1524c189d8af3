package column

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a board's columns left to right",
		Long: `List the columns of a board in order, with the number of tasks in each.

Examples:
  tablero column list --board=Roadmap
  tablero column list --board=Roadmap --json
`,
		RunE: handler.Command(runList),
	}

	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}

	columns, err := c.App.ColumnService.List(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	out := cli.ColumnList{Board: b.Name, Columns: make([]cli.ColumnView, len(columns))}
	for i, col := range columns {
		count, err := c.App.Repo().CountTasksByStatus(ctx, col.ID)
		if err != nil {
			return nil, err
		}
		out.Columns[i] = cli.NewColumnView(col, b, count)
	}
	return out, nil
}
