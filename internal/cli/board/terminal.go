package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// TerminalCmd returns the board terminal subcommand
func TerminalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terminal",
		Short: "Choose the column that counts as done",
		Long: `Designate the terminal column of a board. A task linked to another task
can only enter the terminal column once the other task is already there.

Examples:
  tablero board terminal --board=Roadmap --column=Shipped
  tablero board terminal --board=Roadmap --clear
`,
		RunE: handler.Command(runTerminal),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title")
	cmd.Flags().Bool("clear", false, "Remove the terminal column")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runTerminal(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}

	if args.GetBool("clear") {
		if err := c.App.BoardService.SetTerminalColumn(ctx, b.ID, nil); err != nil {
			return nil, err
		}
		return cli.Result{ID: string(b.ID), Message: fmt.Sprintf("Board '%s' has no terminal column", b.Name)}, nil
	}

	col, err := args.Parser.ParseColumn(ctx, b.ID, "column")
	if err != nil {
		return nil, err
	}
	if err := c.App.BoardService.SetTerminalColumn(ctx, b.ID, &col.ID); err != nil {
		return nil, err
	}
	return cli.Result{ID: string(col.ID), Message: fmt.Sprintf("'%s' is now the terminal column of '%s'", col.Title, b.Name)}, nil
}
