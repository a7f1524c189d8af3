package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task (requires confirmation unless --force or --quiet).
Tasks that depended on it lose their link.

Examples:
  tablero task delete --task=<task-id> --force
`,
		RunE: handler.Command(runDelete),
	}

	cmd.Flags().String("task", "", "Task ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseTaskID("task")
	if err != nil {
		return nil, err
	}
	task, err := c.App.TaskService.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Ask for confirmation unless force or quiet mode
	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		fmt.Printf("Delete task '%s'? (y/N): ", task.Title)
		var response string
		_, _ = fmt.Scanln(&response)
		if r := strings.ToLower(response); r != "y" && r != "yes" {
			fmt.Println("Cancelled")
			return nil, nil
		}
	}

	if err := c.App.TaskService.Delete(ctx, id); err != nil {
		return nil, err
	}
	return cli.Result{ID: string(id), Message: fmt.Sprintf("Task '%s' deleted", task.Title)}, nil
}
