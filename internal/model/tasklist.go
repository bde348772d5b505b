package model

import "strings"

// TaskList is an ordered, index-addressable collection of todos plus the
// optional path it was loaded from. The todo sequence is the sole
// authoritative state; Source is used only for persistence.
type TaskList struct {
	Todos  []Todo
	Source Path
}

// Len returns the number of todos in the list.
func (l TaskList) Len() int {
	return len(l.Todos)
}

// At returns the todo at index i and whether the index was in range.
func (l TaskList) At(i int) (Todo, bool) {
	if i < 0 || i >= len(l.Todos) {
		return Todo{}, false
	}

	return l.Todos[i], true
}

// UpdateAt applies fn to the todo at index i and replaces it, returning a
// new list. An out-of-range index is a deliberate no-op: the list comes back
// unchanged and no error is raised. Callers rely on this silent tolerance.
func (l TaskList) UpdateAt(i int, fn func(Todo) Todo) TaskList {
	if i < 0 || i >= len(l.Todos) {
		return l
	}

	todos := make([]Todo, len(l.Todos))
	copy(todos, l.Todos)
	todos[i] = fn(todos[i])
	l.Todos = todos

	return l
}

// Append returns a new list with t added at the end.
func (l TaskList) Append(t Todo) TaskList {
	todos := make([]Todo, 0, len(l.Todos)+1)
	todos = append(todos, l.Todos...)
	todos = append(todos, t)
	l.Todos = todos

	return l
}

// RemoveAt returns a new list without the todo at index i. Like UpdateAt,
// an out-of-range index returns the list unchanged.
func (l TaskList) RemoveAt(i int) TaskList {
	if i < 0 || i >= len(l.Todos) {
		return l
	}

	todos := make([]Todo, 0, len(l.Todos)-1)
	todos = append(todos, l.Todos[:i]...)
	todos = append(todos, l.Todos[i+1:]...)
	l.Todos = todos

	return l
}

// Serialize joins every todo's line form with single newlines. There is no
// trailing newline.
func (l TaskList) Serialize() string {
	lines := make([]string, 0, len(l.Todos))
	for _, t := range l.Todos {
		lines = append(lines, t.String())
	}

	return strings.Join(lines, "\n")
}
