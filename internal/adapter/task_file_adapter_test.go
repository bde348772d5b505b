package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tick/internal/model"
)

func writeFixture(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "todo.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func TestReadLines(t *testing.T) {
	a := NewLocalTaskFileAdapter()

	t.Run("splits lines and keeps interior empty lines", func(t *testing.T) {
		path := writeFixture(t, "x Call Mom\n\n(A) Buy milk\n")

		lines, err := a.ReadLines(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"x Call Mom", "", "(A) Buy milk"}, lines)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		path := writeFixture(t, "one\ntwo")

		lines, err := a.ReadLines(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"one", "two"}, lines)
	})

	t.Run("tolerates CRLF endings", func(t *testing.T) {
		path := writeFixture(t, "one\r\ntwo\r\n")

		lines, err := a.ReadLines(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"one", "two"}, lines)
	})

	t.Run("empty file yields no lines", func(t *testing.T) {
		path := writeFixture(t, "")

		lines, err := a.ReadLines(path)
		require.NoError(t, err)

		assert.Empty(t, lines)
	})

	t.Run("missing file propagates the error", func(t *testing.T) {
		_, err := a.ReadLines(m.Path(filepath.Join(t.TempDir(), "missing.txt")))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestWriteFile(t *testing.T) {
	a := NewLocalTaskFileAdapter()

	t.Run("overwrites prior content", func(t *testing.T) {
		path := writeFixture(t, "old content\nmore old content\n")

		require.NoError(t, a.WriteFile(path, "x Call Mom\n(A) Buy milk"))

		data, err := os.ReadFile(string(path))
		require.NoError(t, err)

		assert.Equal(t, "x Call Mom\n(A) Buy milk", string(data))
	})

	t.Run("creates a missing file", func(t *testing.T) {
		path := m.Path(filepath.Join(t.TempDir(), "new.txt"))

		require.NoError(t, a.WriteFile(path, "first task"))

		data, err := os.ReadFile(string(path))
		require.NoError(t, err)

		assert.Equal(t, "first task", string(data))
	})
}

func TestExists(t *testing.T) {
	a := NewLocalTaskFileAdapter()

	t.Run("true for an existing file", func(t *testing.T) {
		path := writeFixture(t, "task")

		exists, err := a.Exists(path)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("false for a missing file", func(t *testing.T) {
		exists, err := a.Exists(m.Path(filepath.Join(t.TempDir(), "missing.txt")))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
