package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board with all its columns and tasks",
		Long: `Delete a board (requires confirmation unless --force or --quiet).

Examples:
  tablero board delete --board=Roadmap
  tablero board delete --board=Roadmap --force
`,
		RunE: handler.Command(runDelete),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}

	// Ask for confirmation unless force or quiet mode
	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		fmt.Printf("Delete board '%s' and everything on it? (y/N): ", b.Name)
		var response string
		_, _ = fmt.Scanln(&response)
		if r := strings.ToLower(response); r != "y" && r != "yes" {
			fmt.Println("Cancelled")
			return nil, nil
		}
	}

	if err := c.App.BoardService.Delete(ctx, b.ID); err != nil {
		return nil, err
	}
	return cli.Result{ID: string(b.ID), Message: fmt.Sprintf("Board '%s' deleted", b.Name)}, nil
}
