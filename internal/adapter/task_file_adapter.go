// Package adapter contains filesystem adapters for the tick CLI.
package adapter

import (
	"os"
	"strings"

	m "github.com/mouse-blink/tick/internal/model"
)

// TaskFileAdapter abstracts the line source and sink the task list core
// collaborates with. It intentionally hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type TaskFileAdapter interface {
	// ReadLines yields the raw lines of the file at path, in file order,
	// with line terminators already stripped.
	ReadLines(path m.Path) ([]string, error)

	// WriteFile overwrites the full contents of path with content.
	WriteFile(path m.Path, content string) error

	// Exists reports whether a file exists at path.
	Exists(path m.Path) (bool, error)
}

// LocalTaskFileAdapter is the concrete TaskFileAdapter backed by the local
// filesystem.
type LocalTaskFileAdapter struct{}

// NewLocalTaskFileAdapter constructs a LocalTaskFileAdapter ready to be
// wired into the workflow.
func NewLocalTaskFileAdapter() *LocalTaskFileAdapter {
	return &LocalTaskFileAdapter{}
}

// ReadLines loads the file at path and splits it into newline-trimmed
// lines. A trailing newline does not produce a final empty line, and CRLF
// endings are tolerated. Read failures propagate verbatim, no retries.
func (a *LocalTaskFileAdapter) ReadLines(path m.Path) ([]string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines, nil
}

// WriteFile overwrites path with content.
func (a *LocalTaskFileAdapter) WriteFile(path m.Path, content string) error {
	return os.WriteFile(string(path), []byte(content), 0o644)
}

// Exists reports whether path exists on disk.
func (a *LocalTaskFileAdapter) Exists(path m.Path) (bool, error) {
	if _, err := os.Stat(string(path)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
