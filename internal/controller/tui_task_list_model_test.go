package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tick/internal/model"
)

func sampleEntries() []ListEntry {
	return []ListEntry{
		{Number: 1, Todo: m.FromParsed(m.ParsedLine{Priority: "A", Task: "pay bills"})},
		{Number: 2, Todo: m.FromParsed(m.ParsedLine{Completed: true, Task: "call mom"})},
	}
}

func TestNewTaskListModel(t *testing.T) {
	model := newTaskListModel(sampleEntries(), 5)

	assert.Equal(t, 2, model.shown)
	assert.Equal(t, 5, model.total)
	assert.Len(t, model.taskList.Items(), 2)
}

func TestTaskListModelUpdate(t *testing.T) {
	t.Run("window size resizes the list", func(t *testing.T) {
		model := newTaskListModel(sampleEntries(), 2)

		updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

		got, ok := updated.(taskListModel)
		require.True(t, ok)
		assert.Equal(t, 120, got.width)
		assert.Equal(t, 40, got.height)
	})

	t.Run("q quits", func(t *testing.T) {
		model := newTaskListModel(sampleEntries(), 2)

		_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})
}

func TestTaskListModelView(t *testing.T) {
	model := newTaskListModel(sampleEntries(), 2)
	model.width = 80
	model.height = 24

	view := model.View()

	assert.Contains(t, view, "Tick Tasks")
	assert.Contains(t, view, "q quit")
}

func TestTaskItemFilterValue(t *testing.T) {
	item := taskItem{entry: ListEntry{Todo: m.FromParsed(m.ParsedLine{Task: "find me +here"})}}
	assert.Equal(t, "find me +here", item.FilterValue())
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("9"), priorityColor("A"))
	assert.Equal(t, lipgloss.Color("11"), priorityColor("B"))
	assert.Equal(t, lipgloss.Color("10"), priorityColor("C"))
	assert.Equal(t, lipgloss.Color("14"), priorityColor("D"))
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "short", truncateToWidth("short", 10))
	assert.Equal(t, "long…", truncateToWidth("long text", 5))
	assert.Equal(t, "", truncateToWidth("anything", 0))
	assert.Equal(t, "…", truncateToWidth("anything", 1))
}
