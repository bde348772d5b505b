// Package domain implements the todo.txt line grammar and the workflow
// operations built on top of it.
package domain

import (
	"strings"
	"time"

	m "github.com/mouse-blink/tick/internal/model"
)

// separators are the whitespace characters that may sit between prefix
// tokens. Runs of them collapse to a single space on re-serialization.
const separators = " \t"

// ParseLine tokenizes one raw todo.txt line. The grammar reads an ordered
// sequence of optional prefix tokens, left to right:
//
//	["x "] ["(" A-Z ") "] [ date " " date " " | date " " ] task
//
// Everything left after the recognized prefixes (and the whitespace runs
// separating them) is the task text, verbatim. The only rejected input is
// the empty string, which returns model.ErrNoData; a line of pure
// whitespace or pure metadata parses fine.
func ParseLine(raw string) (m.ParsedLine, error) {
	if raw == "" {
		return m.ParsedLine{}, m.ErrNoData
	}

	var p m.ParsedLine

	rest := raw
	rest, p.Completed = parseCompletion(rest)
	rest, p.Priority = parsePriority(rest)
	rest, p.EndDate, p.StartDate = parseDateClause(rest)
	p.Task = rest

	return p, nil
}

// ParseTodo parses one line and assembles the Todo record, deriving its
// project and context tags.
func ParseTodo(raw string) (m.Todo, error) {
	p, err := ParseLine(raw)
	if err != nil {
		return m.Todo{}, err
	}

	return m.FromParsed(p), nil
}

// ReadTaskList parses each raw line independently, in order. Empty lines
// are silently dropped rather than kept as errors; nothing aborts the read.
func ReadTaskList(lines []string, source m.Path) m.TaskList {
	todos := make([]m.Todo, 0, len(lines))

	for _, line := range lines {
		todo, err := ParseTodo(line)
		if err != nil {
			continue
		}

		todos = append(todos, todo)
	}

	return m.TaskList{Todos: todos, Source: source}
}

// parseCompletion consumes a leading completion marker. The marker is the
// whole token "x": a bare "x" line or "x" followed by whitespace. Words
// like "xylophone" stay task text.
func parseCompletion(s string) (string, bool) {
	if s == "x" {
		return "", true
	}

	if len(s) > 1 && s[0] == 'x' && isSeparator(s[1]) {
		return skipSeparators(s[1:]), true
	}

	return s, false
}

// parsePriority consumes a leading "(A)".."(Z)" marker and its separator.
func parsePriority(s string) (string, string) {
	if len(s) >= 3 && s[0] == '(' && s[1] >= 'A' && s[1] <= 'Z' && s[2] == ')' {
		return skipSeparators(s[3:]), string(s[1])
	}

	return s, ""
}

// parseDateClause resolves the date clause by ordered choice: the two-date
// alternative is attempted first, and only when it cannot match in full
// does the parser back up and retry the one-date rule. In the two-date form
// the first date is the completion date and the second the creation date;
// a single date is always a creation date.
func parseDateClause(s string) (string, *time.Time, *time.Time) {
	first, afterFirst, ok := parseDateToken(s)
	if !ok {
		return s, nil, nil
	}

	// Two-date form: one-or-more separators, then a second full date.
	afterSep := skipSeparators(afterFirst)
	if len(afterSep) < len(afterFirst) {
		if second, afterSecond, ok := parseDateToken(afterSep); ok {
			return skipSeparators(afterSecond), &first, &second
		}
	}

	// Fall back to the one-date form.
	return afterSep, nil, &first
}

// parseDateToken reads an exact-width YYYY-MM-DD date at the start of s.
// A malformed or calendar-invalid date fails the match and leaves the text
// to the task remainder; it is never a line-level error.
func parseDateToken(s string) (time.Time, string, bool) {
	if len(s) < 10 {
		return time.Time{}, s, false
	}

	d, ok := m.ParseDate(s[:10])
	if !ok {
		return time.Time{}, s, false
	}

	return d, s[10:], true
}

func isSeparator(c byte) bool {
	return strings.IndexByte(separators, c) >= 0
}

func skipSeparators(s string) string {
	return strings.TrimLeft(s, separators)
}
