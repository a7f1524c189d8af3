// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// Func runs a command against an initialized CLI and returns what to print.
// A nil result prints nothing.
type Func func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Arguments captures positional arguments and gives access to the flags
type Arguments struct {
	Args   []string
	Parser *FlagParser
	cmd    *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// GetString retrieves a string flag
func (a *Arguments) GetString(name string) string {
	v, _ := a.cmd.Flags().GetString(name)
	return v
}

// GetInt retrieves an int flag
func (a *Arguments) GetInt(name string) int {
	v, _ := a.cmd.Flags().GetInt(name)
	return v
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, _ := a.cmd.Flags().GetBool(name)
	return v
}

// Changed reports whether the flag was set on the command line
func (a *Arguments) Changed(name string) bool {
	return a.cmd.Flags().Changed(name)
}

// Command wraps common command execution logic:
// CLI setup and teardown, error reporting with exit codes, and output formatting.
// Returns a cobra RunE compatible function.
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.Formatter(cmd)

		c, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		defer func() {
			if err := c.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()

		result, err := fn(ctx, c, &Arguments{
			Args:   args,
			Parser: NewFlagParser(cmd, c),
			cmd:    cmd,
		})
		if err != nil {
			return cli.Fail(formatter, err)
		}
		if result == nil {
			return nil
		}

		// Common output formatting
		return formatter.Success(result)
	}
}
