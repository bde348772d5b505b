package controller

import (
	"bytes"
	"fmt"
	"time"

	m "github.com/mouse-blink/tick/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayList renders the entries as a table. total is the size of the
// unfiltered list, used in the footer when a filter narrowed the view.
func (s *SimpleUI) DisplayList(entries []ListEntry, total int) error {
	if total == 0 {
		s.cmd.Println("No tasks found")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Done", "Pri", "Completed", "Created", "Task"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, entry := range entries {
		table.Append(listRow(entry))
	}

	table.SetFooter([]string{
		"", "", "", "",
		"Shown",
		fmt.Sprintf("%d of %d", len(entries), total),
	})

	table.Render()
	s.cmd.Printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayMessage prints a one-line operation result.
func (s *SimpleUI) DisplayMessage(format string, args ...any) {
	s.cmd.Printf(format+"\n", args...)
}

func listRow(entry ListEntry) []string {
	todo := entry.Todo

	done := ""
	if todo.Completed {
		done = "x"
	}

	return []string{
		fmt.Sprintf("%d", entry.Number),
		done,
		todo.Priority,
		formatOptionalDate(todo.EndDate),
		formatOptionalDate(todo.StartDate),
		todo.Task,
	}
}

func formatOptionalDate(d *time.Time) string {
	if d == nil {
		return ""
	}

	return m.FormatDate(*d)
}
