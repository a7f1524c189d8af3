package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a board seeded with the default columns from your config
(To Do, In Progress and Done unless configured otherwise).

Examples:
  # Create a board (human-readable output)
  tablero board create --name="Roadmap"

  # JSON output for agents
  tablero board create --name="Roadmap" --json

  # Quiet mode for bash capture
  BOARD_ID=$(tablero board create --name="Roadmap" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Board name (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	name, err := args.Parser.ParseString("name")
	if err != nil {
		return nil, err
	}

	b, columns, err := c.App.BoardService.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return cli.NewBoardView(b, columns), nil
}
