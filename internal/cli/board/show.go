package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board and its columns",
		RunE:  handler.Command(runShow),
	}

	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}
	columns, err := c.App.ColumnService.List(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	return cli.NewBoardView(b, columns), nil
}
