package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Long: `List every board.

Examples:
  tablero board list
  tablero board list --json
  tablero board list --quiet   # one ID per line
`,
		RunE: handler.Command(runList),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	boards, err := c.App.BoardService.List(ctx)
	if err != nil {
		return nil, err
	}

	out := cli.BoardList{Boards: make([]cli.BoardView, len(boards))}
	for i, b := range boards {
		out.Boards[i] = cli.NewBoardView(b, nil)
	}
	return out, nil
}
