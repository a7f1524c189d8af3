package column

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a column to a board",
		Long: `Create a column at the right edge of a board. It gets a random color
from the palette; change it afterwards with 'tablero column recolor'.

Examples:
  tablero column create --board=Roadmap --title="Review"
  COL_ID=$(tablero column create --board=Roadmap --title="Review" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("title", "", "Column title (required)")
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

	col, err := c.App.ColumnService.Create(ctx, b.ID, title)
	if err != nil {
		return nil, err
	}
	return cli.NewColumnView(col, b, -1), nil
}
