package cmd

import (
	"github.com/spf13/cobra"
)

// rmCmd represents the rm command.
var rmCmd = newRmCmd()

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <number>...",
		Short: "Delete tasks",
		Long:  "Delete the numbered tasks from the todo file. Remaining tasks are renumbered.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseTaskNumbers(args)
			if err != nil {
				return err
			}

			return resolveWorkflow(cmd).Remove(numbers...)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
