package domain

import (
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/tick/internal/adapter"
	"github.com/mouse-blink/tick/internal/controller"
	m "github.com/mouse-blink/tick/internal/model"
)

// ListArgs narrows the todos shown by List. Zero values mean no filter.
type ListArgs struct {
	Project  string
	Context  string
	Priority string
	Done     bool
	Undone   bool
}

// AddArgs describes a task to append.
type AddArgs struct {
	Text      string
	StampDate bool
}

// Workflow defines the interface for task list operations. Task numbers are
// one-based, matching what every list view displays.
type Workflow interface {
	List(args ListArgs) error
	Add(args AddArgs) error
	Do(numbers ...int) error
	Undo(numbers ...int) error
	Pri(number int, priority string) error
	Depri(numbers ...int) error
	Remove(numbers ...int) error
	Archive() error
}

type workflow struct {
	files    adapter.TaskFileAdapter
	ui       controller.UI
	todoFile m.Path
	doneFile m.Path
	clock    func() time.Time
}

// Option configures a Workflow.
type Option func(*workflow)

// WithClock overrides the clock used for date stamping.
func WithClock(clock func() time.Time) Option {
	return func(w *workflow) {
		w.clock = clock
	}
}

// NewWorkflow creates a Workflow over the given todo and archive files.
func NewWorkflow(files adapter.TaskFileAdapter, ui controller.UI, todoFile, doneFile m.Path, options ...Option) Workflow {
	w := &workflow{
		files:    files,
		ui:       ui,
		todoFile: todoFile,
		doneFile: doneFile,
		clock:    time.Now,
	}

	for _, option := range options {
		option(w)
	}

	return w
}

// List loads the todo file and displays the todos passing the filters,
// keeping their original one-based numbers.
func (w *workflow) List(args ListArgs) error {
	list, err := w.load(w.todoFile)
	if err != nil {
		return err
	}

	entries := make([]controller.ListEntry, 0, list.Len())

	for i, todo := range list.Todos {
		if !matches(todo, args) {
			continue
		}

		entries = append(entries, controller.ListEntry{Number: i + 1, Todo: todo})
	}

	return w.ui.DisplayList(entries, list.Len())
}

// Add parses text as a full todo.txt line, so priority and date prefixes in
// the input are recognized, and appends the result. An empty text surfaces
// model.ErrNoData.
func (w *workflow) Add(args AddArgs) error {
	todo, err := ParseTodo(args.Text)
	if err != nil {
		return err
	}

	if args.StampDate && todo.StartDate == nil {
		todo = todo.WithStartDate(w.today())
	}

	list, err := w.load(w.todoFile)
	if err != nil {
		return err
	}

	list = list.Append(todo)

	if err := w.save(list); err != nil {
		return err
	}

	w.ui.DisplayMessage("Added task %d: %s", list.Len(), todo.String())

	return nil
}

// Do marks the given tasks completed. A completion date is stamped only
// when the todo already carries a creation date, which keeps the two-date
// line form intact on rewrite.
func (w *workflow) Do(numbers ...int) error {
	return w.updateEach("Completed", numbers, func(todo m.Todo) m.Todo {
		todo = todo.Complete()
		if todo.StartDate != nil && todo.EndDate == nil {
			todo = todo.WithEndDate(w.today())
		}

		return todo
	})
}

// Undo clears the completed flag and any completion date.
func (w *workflow) Undo(numbers ...int) error {
	return w.updateEach("Reopened", numbers, func(todo m.Todo) m.Todo {
		return todo.WithCompleted(false).ClearEndDate()
	})
}

// Pri sets a task's priority. Anything but a single uppercase letter is
// rejected with model.ErrInvalidPriority before the list is touched.
func (w *workflow) Pri(number int, priority string) error {
	if !m.ValidPriority(priority) {
		return m.ErrInvalidPriority
	}

	return w.updateEach("Prioritized", []int{number}, func(todo m.Todo) m.Todo {
		todo, _ = todo.WithPriority(priority)

		return todo
	})
}

// Depri removes the priority from the given tasks.
func (w *workflow) Depri(numbers ...int) error {
	return w.updateEach("Deprioritized", numbers, func(todo m.Todo) m.Todo {
		return todo.ClearPriority()
	})
}

// Remove deletes the given tasks from the list.
func (w *workflow) Remove(numbers ...int) error {
	list, err := w.load(w.todoFile)
	if err != nil {
		return err
	}

	// Delete from the back so earlier removals don't shift later indexes.
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	for _, number := range sorted {
		todo, ok := list.At(number - 1)
		if !ok {
			w.ui.DisplayMessage("No task %d", number)
			continue
		}

		list = list.RemoveAt(number - 1)
		w.ui.DisplayMessage("Removed task %d: %s", number, todo.String())
	}

	return w.save(list)
}

// Archive moves completed todos from the todo file into the done file. Both
// files are loaded concurrently; the done file may not exist yet.
func (w *workflow) Archive() error {
	var active, archived m.TaskList

	var g errgroup.Group

	g.Go(func() error {
		var err error
		active, err = w.load(w.todoFile)

		return err
	})
	g.Go(func() error {
		var err error
		archived, err = w.load(w.doneFile)

		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	remaining := m.TaskList{Source: active.Source}
	moved := 0

	for _, todo := range active.Todos {
		if todo.Completed {
			archived = archived.Append(todo)
			moved++

			continue
		}

		remaining = remaining.Append(todo)
	}

	if moved == 0 {
		w.ui.DisplayMessage("No completed tasks to archive")
		return nil
	}

	if err := w.save(archived); err != nil {
		return err
	}

	if err := w.save(remaining); err != nil {
		return err
	}

	w.ui.DisplayMessage("Archived %d task(s) to %s", moved, w.doneFile)

	return nil
}

// updateEach applies fn to each numbered task and reports the outcome.
// Out-of-range numbers are reported but never abort the rest; the list
// itself treats them as no-ops.
func (w *workflow) updateEach(verb string, numbers []int, fn func(m.Todo) m.Todo) error {
	list, err := w.load(w.todoFile)
	if err != nil {
		return err
	}

	for _, number := range numbers {
		index := number - 1

		if _, ok := list.At(index); !ok {
			w.ui.DisplayMessage("No task %d", number)
			continue
		}

		list = list.UpdateAt(index, fn)

		todo, _ := list.At(index)
		w.ui.DisplayMessage("%s task %d: %s", verb, number, todo.String())
	}

	return w.save(list)
}

func (w *workflow) load(path m.Path) (m.TaskList, error) {
	exists, err := w.files.Exists(path)
	if err != nil {
		return m.TaskList{}, err
	}

	if !exists {
		return m.TaskList{Source: path}, nil
	}

	lines, err := w.files.ReadLines(path)
	if err != nil {
		return m.TaskList{}, err
	}

	return ReadTaskList(lines, path), nil
}

func (w *workflow) save(list m.TaskList) error {
	return w.files.WriteFile(list.Source, list.Serialize())
}

func (w *workflow) today() time.Time {
	now := w.clock()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func matches(todo m.Todo, args ListArgs) bool {
	if args.Done && !todo.Completed {
		return false
	}

	if args.Undone && todo.Completed {
		return false
	}

	if args.Priority != "" && todo.Priority != args.Priority {
		return false
	}

	if args.Project != "" && !slices.Contains(todo.Projects, args.Project) {
		return false
	}

	if args.Context != "" && !slices.Contains(todo.Contexts, args.Context) {
		return false
	}

	return true
}
