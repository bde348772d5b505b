package cmd

import (
	"github.com/spf13/cobra"
)

// priCmd represents the pri command.
var priCmd = newPriCmd()

func newPriCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pri <number> <priority>",
		Short: "Set a task's priority",
		Long:  "Set the priority of the numbered task. The priority must be a single uppercase letter A-Z.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseTaskNumbers(args[:1])
			if err != nil {
				return err
			}

			return resolveWorkflow(cmd).Pri(numbers[0], args[1])
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(priCmd)
}
