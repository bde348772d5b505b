package cmd

import (
	"github.com/spf13/cobra"
)

// undoCmd represents the undo command.
var undoCmd = newUndoCmd()

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <number>...",
		Short: "Reopen completed tasks",
		Long:  "Clear the completion marker and completion date of the numbered tasks.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseTaskNumbers(args)
			if err != nil {
				return err
			}

			return resolveWorkflow(cmd).Undo(numbers...)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
