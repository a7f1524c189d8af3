package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an empty, non-default column",
		Long: `Delete a column. Default columns and columns holding tasks are refused.

Examples:
  tablero column delete --board=Roadmap --column=Review
`,
		RunE: handler.Command(runDelete),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}
	col, err := args.Parser.ParseColumn(ctx, b.ID, "column")
	if err != nil {
		return nil, err
	}

	if err := c.App.ColumnService.Delete(ctx, col.ID); err != nil {
		return nil, err
	}
	return cli.Result{ID: string(col.ID), Message: fmt.Sprintf("Column '%s' deleted", col.Title)}, nil
}
