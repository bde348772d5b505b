package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tick/internal/domain"
	domainmocks "github.com/mouse-blink/tick/internal/domain/mocks"
)

// withMockWorkflow swaps the package workflow for a mock for one test.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// execute runs the root command with args and silenced output.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

func TestRootCmd_DefaultsToList(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("List", domain.ListArgs{}).Return(nil)

	require.NoError(t, execute(t))
}

func TestParseTaskNumbers(t *testing.T) {
	t.Run("parses positive integers", func(t *testing.T) {
		numbers, err := parseTaskNumbers([]string{"1", "12", "3"})
		require.NoError(t, err)

		assert.Equal(t, []int{1, 12, 3}, numbers)
	})

	for _, invalid := range []string{"0", "-2", "abc", "1.5"} {
		t.Run("rejects "+invalid, func(t *testing.T) {
			_, err := parseTaskNumbers([]string{invalid})
			assert.Error(t, err)
		})
	}
}

func TestDoneFilePath(t *testing.T) {
	originalFile := fileFlag
	originalDone := doneFileFlag

	t.Cleanup(func() {
		fileFlag = originalFile
		doneFileFlag = originalDone
	})

	t.Run("defaults next to the todo file", func(t *testing.T) {
		fileFlag = "lists/todo.txt"
		doneFileFlag = ""

		assert.Equal(t, "lists/done.txt", doneFilePath())
	})

	t.Run("explicit flag wins", func(t *testing.T) {
		doneFileFlag = "elsewhere/archive.txt"

		assert.Equal(t, "elsewhere/archive.txt", doneFilePath())
	})
}
