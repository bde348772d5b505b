package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/tick/internal/domain"
)

// addCmd represents the add command.
var addCmd = newAddCmd()
var addDateFlag bool

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task",
		Long: `Add a task to the todo file. The text is parsed as a full todo.txt
line, so a leading priority or date is recognized:

  tick add Call Mom @phone
  tick add "(A) 2024-03-01 File taxes +finance"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolveWorkflow(cmd).Add(domain.AddArgs{
				Text:      strings.Join(args, " "),
				StampDate: addDateFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&addDateFlag, "date", "t", false, "stamp today as the creation date")

	return cmd
}

func init() {
	rootCmd.AddCommand(addCmd)
}
