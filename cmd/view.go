package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tick/internal/controller"
	"github.com/mouse-blink/tick/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse tasks interactively",
		Long:  "Browse the todo file in an interactive terminal UI with filtering.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resolveWorkflowWithUI(controller.NewTUI(cmd.OutOrStdout())).List(domain.ListArgs{})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
