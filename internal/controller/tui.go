package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayList shows the entries in an interactive Bubble Tea browser.
func (t *TUI) DisplayList(entries []ListEntry, total int) error {
	model := newTaskListModel(entries, total)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayMessage prints a one-line operation result.
func (t *TUI) DisplayMessage(format string, args ...any) {
	_, _ = fmt.Fprintf(t.output, format+"\n", args...)
}
