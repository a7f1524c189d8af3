package column

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ReorderCmd returns the column reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Set the full left-to-right column order",
		Long: `Give every column of the board, by ID or title, in the new order.

Examples:
  tablero column reorder --board=Roadmap --order="Done,In Progress,To Do"
`,
		RunE: handler.Command(runReorder),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("order", "", "Comma separated column IDs or titles (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReorder(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := args.Parser.ParseString("order")
	if err != nil {
		return nil, err
	}

	refs := cli.SplitList(raw)
	ids := make([]types.ColumnID, len(refs))
	titles := make([]string, len(refs))
	for i, ref := range refs {
		col, err := c.ResolveColumn(ctx, b.ID, ref)
		if err != nil {
			return nil, err
		}
		ids[i] = col.ID
		titles[i] = col.Title
	}

	g, err := c.App.OpenBoard(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	if err := g.Dispatch(ctx, board.ReorderColumns{ColumnIDs: ids}).Wait(); err != nil {
		return nil, err
	}
	return cli.Result{ID: string(b.ID), Message: "Columns reordered: " + strings.Join(titles, ", ")}, nil
}
