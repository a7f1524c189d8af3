package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
	cli *cli.CLI
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, c *cli.CLI) *FlagParser {
	return &FlagParser{cmd: cmd, cli: c}
}

// ParseBoard resolves --board (or $TABLERO_BOARD) to a board
func (p *FlagParser) ParseBoard(ctx context.Context) (*models.Board, error) {
	return p.cli.ResolveBoard(ctx, p.cmd)
}

// ParseColumn resolves a column flag, by id or title, on the given board
func (p *FlagParser) ParseColumn(ctx context.Context, boardID types.BoardID, flagName string) (*models.Column, error) {
	ref, err := p.ParseString(flagName)
	if err != nil {
		return nil, err
	}
	return p.cli.ResolveColumn(ctx, boardID, ref)
}

// ParseTaskID extracts a task id from a flag
func (p *FlagParser) ParseTaskID(flagName string) (types.TaskID, error) {
	id, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	return types.TaskID(id), nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &cli.UsageError{Message: fmt.Sprintf("--%s is required", flagName)}
	}
	return value, nil
}
