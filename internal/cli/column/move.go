package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Swap a column with its left or right neighbour",
		Long: `Examples:
  tablero column move --board=Roadmap --column=Review --direction=left
`,
		RunE: handler.Command(runMove),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title (required)")
	cmd.Flags().String("direction", "", "left or right (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}
	col, err := args.Parser.ParseColumn(ctx, b.ID, "column")
	if err != nil {
		return nil, err
	}
	raw, err := args.Parser.ParseString("direction")
	if err != nil {
		return nil, err
	}
	dir, err := cli.ParseDirection(raw)
	if err != nil {
		return nil, err
	}

	moved, err := c.App.ColumnService.SwapAdjacent(ctx, col.ID, dir)
	if err != nil {
		return nil, err
	}
	if !moved {
		return cli.Result{ID: string(col.ID), Message: fmt.Sprintf("Column '%s' is already at the %s edge", col.Title, dir)}, nil
	}
	return cli.Result{ID: string(col.ID), Message: fmt.Sprintf("Column '%s' moved %s", col.Title, dir)}, nil
}
