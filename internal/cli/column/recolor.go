package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// RecolorCmd returns the column recolor subcommand
func RecolorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recolor",
		Short: "Change a column's color",
		Long: `Set a column's color to one of the palette names, or cycle to the next
palette color with --next.

Examples:
  tablero column recolor --board=Roadmap --column=Done --color=green
  tablero column recolor --board=Roadmap --column=Done --next
`,
		RunE: handler.Command(runRecolor),
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title (required)")
	cmd.Flags().String("color", "", "Palette color name")
	cmd.Flags().Bool("next", false, "Cycle to the next palette color")
	cmd.MarkFlagsMutuallyExclusive("color", "next")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRecolor(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	b, err := args.Parser.ParseBoard(ctx)
	if err != nil {
		return nil, err
	}
	col, err := args.Parser.ParseColumn(ctx, b.ID, "column")
	if err != nil {
		return nil, err
	}

	var color models.Color
	if args.GetBool("next") {
		color = col.Color.Next()
	} else {
		name, err := args.Parser.ParseString("color")
		if err != nil {
			return nil, err
		}
		if color, err = models.ParseColor(name); err != nil {
			return nil, err
		}
	}

	if err := c.App.ColumnService.Recolor(ctx, col.ID, color); err != nil {
		return nil, err
	}
	return cli.Result{ID: string(col.ID), Message: fmt.Sprintf("Column '%s' is now %s", col.Title, color)}, nil
}
