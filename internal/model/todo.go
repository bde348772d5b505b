// Package model defines the data structures for todo.txt tasks.
package model

import (
	"strings"
	"time"
)

// ParsedLine holds the tokens the line grammar recognized in a raw line.
type ParsedLine struct {
	Completed bool
	Priority  string
	StartDate *time.Time
	EndDate   *time.Time
	Task      string
}

// Todo represents a single task line. It is a value type: every setter
// returns a new Todo and leaves the receiver untouched, so values can be
// shared freely.
//
// Projects and Contexts are derived from Task: whitespace-delimited tokens
// starting with '+' or '@' respectively, sigil stripped, in first-occurrence
// order with duplicates preserved. They are recomputed on every Task
// mutation and must never be set independently.
type Todo struct {
	Completed bool
	Priority  string
	StartDate *time.Time
	EndDate   *time.Time
	Task      string
	Projects  []string
	Contexts  []string
}

// FromParsed assembles a Todo from grammar output and derives its tags.
func FromParsed(p ParsedLine) Todo {
	t := Todo{
		Completed: p.Completed,
		Priority:  p.Priority,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Task:      p.Task,
	}

	return t.withDerivedTags()
}

// String renders the todo in the exact token order the grammar reads:
// completion marker, priority, end date, start date, task text.
func (t Todo) String() string {
	var b strings.Builder

	if t.Completed {
		b.WriteString("x ")
	}

	if t.Priority != "" {
		b.WriteString("(")
		b.WriteString(t.Priority)
		b.WriteString(") ")
	}

	if t.EndDate != nil {
		b.WriteString(FormatDate(*t.EndDate))
		b.WriteString(" ")
	}

	if t.StartDate != nil {
		b.WriteString(FormatDate(*t.StartDate))
		b.WriteString(" ")
	}

	b.WriteString(t.Task)

	return b.String()
}

// WithPriority returns a copy with the priority set. The input must be
// exactly one uppercase ASCII letter; anything else is rejected with
// ErrInvalidPriority, never clamped.
func (t Todo) WithPriority(priority string) (Todo, error) {
	if !ValidPriority(priority) {
		return t, ErrInvalidPriority
	}

	t.Priority = priority

	return t, nil
}

// ClearPriority returns a copy with no priority.
func (t Todo) ClearPriority() Todo {
	t.Priority = ""

	return t
}

// WithTask returns a copy with the task text replaced and tags rederived.
func (t Todo) WithTask(task string) Todo {
	t.Task = task

	return t.withDerivedTags()
}

// AppendTask returns a copy with text appended to the task, separated by a
// single space when both sides are non-empty.
func (t Todo) AppendTask(text string) Todo {
	return t.WithTask(joinTask(t.Task, text))
}

// PrependTask returns a copy with text prepended to the task, separated by a
// single space when both sides are non-empty.
func (t Todo) PrependTask(text string) Todo {
	return t.WithTask(joinTask(text, t.Task))
}

// Complete returns a copy marked completed.
func (t Todo) Complete() Todo {
	return t.WithCompleted(true)
}

// WithCompleted returns a copy with the completed flag set to done. Dates
// are left alone; callers wanting a completion date stamp set it explicitly.
func (t Todo) WithCompleted(done bool) Todo {
	t.Completed = done

	return t
}

// WithStartDate returns a copy with the creation date set.
func (t Todo) WithStartDate(d time.Time) Todo {
	t.StartDate = &d

	return t
}

// WithEndDate returns a copy with the completion date set.
func (t Todo) WithEndDate(d time.Time) Todo {
	t.EndDate = &d

	return t
}

// ClearEndDate returns a copy with no completion date.
func (t Todo) ClearEndDate() Todo {
	t.EndDate = nil

	return t
}

// Equal reports whether two todos carry the same fields. Derived tags are
// not compared separately since they follow Task.
func (t Todo) Equal(o Todo) bool {
	return t.Completed == o.Completed &&
		t.Priority == o.Priority &&
		sameDate(t.StartDate, o.StartDate) &&
		sameDate(t.EndDate, o.EndDate) &&
		t.Task == o.Task
}

// ValidPriority reports whether s is exactly one uppercase ASCII letter.
func ValidPriority(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

func (t Todo) withDerivedTags() Todo {
	t.Projects = extractTags(t.Task, '+')
	t.Contexts = extractTags(t.Task, '@')

	return t
}

// extractTags scans whitespace-delimited tokens of task and collects those
// starting with sigil, sigil stripped, order and duplicates preserved.
func extractTags(task string, sigil byte) []string {
	var tags []string

	for _, token := range strings.Fields(task) {
		if token[0] == sigil {
			tags = append(tags, token[1:])
		}
	}

	return tags
}

func joinTask(left, right string) string {
	if left == "" {
		return right
	}

	if right == "" {
		return left
	}

	return left + " " + right
}
