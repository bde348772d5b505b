// Package controller provides output adapters for displaying task lists.
package controller

import (
	"io"
	"os"

	m "github.com/mouse-blink/tick/internal/model"
	"github.com/spf13/cobra"
)

// ListEntry pairs a todo with its one-based position in the backing file.
// Filtered views keep the original numbering so the number shown is always
// the number other commands accept.
type ListEntry struct {
	Number int
	Todo   m.Todo
}

// UI defines the interface for presenting task lists and operation results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayList(entries []ListEntry, total int) error
	DisplayMessage(format string, args ...any)
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY is
// true it returns a TUI (Bubble Tea); otherwise a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY). Returns false if
// the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
