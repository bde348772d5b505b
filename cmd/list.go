package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tick/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listProjectFlag string
var listContextFlag string
var listPriorityFlag string
var listDoneFlag bool
var listUndoneFlag bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered",
		Long: `List the tasks in the todo file with their task numbers. Filters
narrow the view without renumbering: the numbers shown are always the
ones other commands accept.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resolveWorkflow(cmd).List(domain.ListArgs{
				Project:  listProjectFlag,
				Context:  listContextFlag,
				Priority: listPriorityFlag,
				Done:     listDoneFlag,
				Undone:   listUndoneFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&listProjectFlag, "project", "p", "", "show only tasks tagged +PROJECT")
	cmd.Flags().StringVarP(&listContextFlag, "context", "c", "", "show only tasks tagged @CONTEXT")
	cmd.Flags().StringVarP(&listPriorityFlag, "priority", "P", "", "show only tasks with this priority (A-Z)")
	cmd.Flags().BoolVar(&listDoneFlag, "done", false, "show only completed tasks")
	cmd.Flags().BoolVar(&listUndoneFlag, "undone", false, "show only open tasks")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
