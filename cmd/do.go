package cmd

import (
	"github.com/spf13/cobra"
)

// doCmd represents the do command.
var doCmd = newDoCmd()

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <number>...",
		Short: "Mark tasks as completed",
		Long: `Mark the numbered tasks as completed. A task that carries a creation
date also gets today stamped as its completion date.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseTaskNumbers(args)
			if err != nil {
				return err
			}

			return resolveWorkflow(cmd).Do(numbers...)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(doCmd)
}
