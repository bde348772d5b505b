package cmd

import (
	"github.com/spf13/cobra"
)

// archiveCmd represents the archive command.
var archiveCmd = newArchiveCmd()

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Move completed tasks to the done file",
		Long:  "Move every completed task from the todo file to the done file, appending to what is already archived.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resolveWorkflow(cmd).Archive()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
