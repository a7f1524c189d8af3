package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Change a column's title",
		Long: `Examples:
  tablero column rename --board=Roadmap --column="In Progress" --title="Doing"
`,
		RunE: handler.Command(runRename),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title (required)")
	cmd.Flags().String("title", "", "New title (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}
	col, err := args.Parser.ParseColumn(ctx, b.ID, "column")
	if err != nil {
		return nil, err
	}
	title, err := args.Parser.ParseString("title")
	if err != nil {
		return nil, err
	}

	if err := c.App.ColumnService.Rename(ctx, col.ID, title); err != nil {
		return nil, err
	}
	return cli.Result{ID: string(col.ID), Message: fmt.Sprintf("Column '%s' renamed to '%s'", col.Title, title)}, nil
}
