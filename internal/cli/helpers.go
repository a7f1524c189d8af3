package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/models"
	columnservice "github.com/thenoetrevino/tablero/internal/services/column"
	"github.com/thenoetrevino/tablero/internal/types"
)

// BoardEnv names the environment variable set by `tablero use board`
const BoardEnv = "TABLERO_BOARD"

// AddOutputFlags adds the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddBoardFlag adds --board, which falls back to $TABLERO_BOARD
func AddBoardFlag(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board ID or name (default $"+BoardEnv+")")
}

// Formatter builds an OutputFormatter from the output flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// GetBoardRef reads the board from --board or the environment
func GetBoardRef(cmd *cobra.Command) (string, error) {
	if ref, _ := cmd.Flags().GetString("board"); ref != "" {
		return ref, nil
	}
	if ref := os.Getenv(BoardEnv); ref != "" {
		return ref, nil
	}
	return "", &UsageError{
		Message:    "no board selected",
		Suggestion: "pass --board or run: eval $(tablero use board <board>)",
	}
}

// ResolveBoard turns --board into a board
func (c *CLI) ResolveBoard(ctx context.Context, cmd *cobra.Command) (*models.Board, error) {
	ref, err := GetBoardRef(cmd)
	if err != nil {
		return nil, err
	}
	return c.App.BoardService.Resolve(ctx, ref)
}

// ResolveColumn finds a column on a board by id or case-insensitive title
func (c *CLI) ResolveColumn(ctx context.Context, boardID types.BoardID, ref string) (*models.Column, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &UsageError{Message: "column is required", Suggestion: "pass a column id or title"}
	}
	columns, err := c.App.ColumnService.List(ctx, boardID)
	if err != nil {
		return nil, err
	}
	for _, col := range columns {
		if string(col.ID) == ref {
			return col, nil
		}
	}
	for _, col := range columns {
		if strings.EqualFold(col.Title, ref) {
			return col, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", columnservice.ErrColumnNotFound, ref)
}

// ParseDirection maps "left"/"right" onto a swap direction
func ParseDirection(s string) (columnservice.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return columnservice.Left, nil
	case "right", "r":
		return columnservice.Right, nil
	default:
		return 0, &UsageError{Message: fmt.Sprintf("invalid direction %q", s), Suggestion: "use left or right"}
	}
}

// SplitList splits a comma separated flag value, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
