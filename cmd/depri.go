package cmd

import (
	"github.com/spf13/cobra"
)

// depriCmd represents the depri command.
var depriCmd = newDepriCmd()

func newDepriCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depri <number>...",
		Short: "Remove the priority from tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseTaskNumbers(args)
			if err != nil {
				return err
			}

			return resolveWorkflow(cmd).Depri(numbers...)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(depriCmd)
}
