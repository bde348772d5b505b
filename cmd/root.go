// Package cmd provides the root command and CLI setup for tick.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mouse-blink/tick/internal/adapter"
	"github.com/mouse-blink/tick/internal/controller"
	"github.com/mouse-blink/tick/internal/domain"
	m "github.com/mouse-blink/tick/internal/model"
	"github.com/spf13/cobra"
)

var taskFiles adapter.TaskFileAdapter

// workflow, when set, overrides the per-run construction. Tests use it to
// inject mocks.
var workflow domain.Workflow

func init() {
	taskFiles = adapter.NewLocalTaskFileAdapter()
}

var fileFlag string
var doneFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Plain-text task manager for todo.txt files",
		Long: `Tick manages tasks kept in the plain-text todo.txt format, one task
per line:

  x (A) 2021-01-02 2021-01-01 Make a New Years Resolution
  (C) 2014-01-01 Learn to +drive @goals

Tasks may carry a completion marker (x), a priority (A-Z), a completion
and a creation date, and free text with +project and @context tags.
Running tick without a subcommand lists the tasks in the todo file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resolveWorkflow(cmd).List(domain.ListArgs{})
		},
	}
	cmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "todo.txt", "todo file to operate on")
	cmd.PersistentFlags().StringVar(&doneFileFlag, "done-file", "", "archive file for completed tasks (default done.txt next to the todo file)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveWorkflow builds the workflow for one command run, honoring the
// test override.
func resolveWorkflow(cmd *cobra.Command) domain.Workflow {
	return resolveWorkflowWithUI(controller.NewUI(cmd, controller.IsTTY(os.Stdout)))
}

func resolveWorkflowWithUI(ui controller.UI) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	return domain.NewWorkflow(taskFiles, ui, m.Path(fileFlag), m.Path(doneFilePath()))
}

func doneFilePath() string {
	if doneFileFlag != "" {
		return doneFileFlag
	}

	return filepath.Join(filepath.Dir(fileFlag), "done.txt")
}

// parseTaskNumbers converts positional arguments to one-based task numbers.
func parseTaskNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid task number %q", arg)
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}
