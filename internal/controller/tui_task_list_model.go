package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// taskItem adapts a ListEntry to the bubbles list item interface.
type taskItem struct {
	entry ListEntry
}

func (i taskItem) FilterValue() string {
	return i.entry.Todo.Task
}

// taskDelegate renders one task per row.
type taskDelegate struct{}

func (d taskDelegate) Height() int  { return 1 }
func (d taskDelegate) Spacing() int { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	task, ok := item.(taskItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	todo := task.entry.Todo

	numberStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Width(5).
		Align(lipgloss.Right)

	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	switch {
	case todo.Completed:
		lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	case todo.Priority != "":
		lineStyle = lipgloss.NewStyle().Foreground(priorityColor(todo.Priority)).Bold(true)
	}

	if isSelected {
		lineStyle = lineStyle.Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0"))
	}

	width := m.Width() - 7
	displayLine := truncateToWidth(todo.String(), width)

	line := fmt.Sprintf("%s  %s",
		numberStyle.Render(fmt.Sprintf("%d", task.entry.Number)),
		lineStyle.Render(displayLine),
	)
	_, _ = fmt.Fprint(w, line)
}

// priorityColor maps priorities onto a small ANSI palette: A red, B yellow,
// C green, everything lower plain cyan.
func priorityColor(priority string) lipgloss.Color {
	switch priority {
	case "A":
		return lipgloss.Color("9")
	case "B":
		return lipgloss.Color("11")
	case "C":
		return lipgloss.Color("10")
	default:
		return lipgloss.Color("14")
	}
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// taskListModel is the interactive browser over a task list.
type taskListModel struct {
	width    int
	height   int
	taskList list.Model
	shown    int
	total    int
}

func newTaskListModel(entries []ListEntry, total int) taskListModel {
	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, taskItem{entry: entry})
	}

	taskList := list.New(items, taskDelegate{}, 80, 20)
	taskList.SetShowPagination(false)
	taskList.SetShowFilter(true)
	taskList.SetShowHelp(false)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.FilterInput.Placeholder = "Filter by task text…"

	return taskListModel{
		taskList: taskList,
		shown:    len(entries),
		total:    total,
	}
}

func (m taskListModel) Init() tea.Cmd {
	return nil
}

func (m taskListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.taskList.SetWidth(m.width)

	case tea.KeyMsg:
		if m.taskList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		var newList list.Model

		newList, cmd = m.taskList.Update(msg)
		m.taskList = newList

		return m, cmd
	}

	return m, cmd
}

func (m taskListModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Tick Tasks")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Tasks: %s of %s",
		accentStyle.Render(fmt.Sprintf("%d", m.shown)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
	))

	table := m.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (m taskListModel) renderTable() string {
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.taskList.SetHeight(listHeight)
	m.taskList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%5s  %s", "#", "Task"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.taskList.View(),
		),
	)
}
