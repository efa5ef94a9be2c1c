package model

// Board maps each column to its ordered tasks.
//
// A Board is a value: every operation that changes it returns a new Board
// and leaves the receiver untouched. Column slices are shared between
// boards but never written after construction.
type Board struct {
	columns map[ColumnID][]Task
}

// NewBoard builds a board from per-column labels, assigning each label a
// fresh task identifier. Keys that are not board columns are ignored.
func NewBoard(labels map[ColumnID][]string) Board {
	columns := make(map[ColumnID][]Task, len(columnOrder))
	for _, col := range columnOrder {
		tasks := make([]Task, 0, len(labels[col]))
		for _, label := range labels[col] {
			tasks = append(tasks, NewTask(label))
		}
		columns[col] = tasks
	}
	return Board{columns: columns}
}

// BoardOf builds a board from existing tasks. The slices are copied.
func BoardOf(tasks map[ColumnID][]Task) Board {
	columns := make(map[ColumnID][]Task, len(columnOrder))
	for _, col := range columnOrder {
		columns[col] = append([]Task(nil), tasks[col]...)
	}
	return Board{columns: columns}
}

// Tasks returns a copy of the tasks in a column
func (b Board) Tasks(col ColumnID) []Task {
	return append([]Task(nil), b.columns[col]...)
}

// Labels returns the labels of a column in order
func (b Board) Labels(col ColumnID) []string {
	tasks := b.columns[col]
	labels := make([]string, len(tasks))
	for i, t := range tasks {
		labels[i] = t.Label
	}
	return labels
}

// ColumnLen returns the number of tasks in a column
func (b Board) ColumnLen(col ColumnID) int {
	return len(b.columns[col])
}

// Len returns the number of tasks across all columns
func (b Board) Len() int {
	n := 0
	for _, col := range columnOrder {
		n += len(b.columns[col])
	}
	return n
}

// Locate finds the column and index holding the task
func (b Board) Locate(id TaskID) (ColumnID, int, bool) {
	for _, col := range columnOrder {
		for i, t := range b.columns[col] {
			if t.ID == id {
				return col, i, true
			}
		}
	}
	return "", -1, false
}

// Task looks up a task by identifier
func (b Board) Task(id TaskID) (Task, bool) {
	col, i, ok := b.Locate(id)
	if !ok {
		return Task{}, false
	}
	return b.columns[col][i], true
}

// TaskAt returns the task at a position in a column
func (b Board) TaskAt(col ColumnID, i int) (Task, bool) {
	tasks := b.columns[col]
	if i < 0 || i >= len(tasks) {
		return Task{}, false
	}
	return tasks[i], true
}

// Equal reports whether both boards hold the same tasks in the same order
func (b Board) Equal(other Board) bool {
	for _, col := range columnOrder {
		x, y := b.columns[col], other.columns[col]
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
	}
	return true
}

// withColumn returns a copy of the board with one column replaced
func (b Board) withColumn(col ColumnID, tasks []Task) Board {
	columns := make(map[ColumnID][]Task, len(columnOrder))
	for k, v := range b.columns {
		columns[k] = v
	}
	columns[col] = tasks
	return Board{columns: columns}
}

// Append returns a board with the task added at the tail of the column
func (b Board) Append(col ColumnID, task Task) Board {
	if !col.Valid() {
		return b
	}
	src := b.columns[col]
	tasks := make([]Task, len(src), len(src)+1)
	copy(tasks, src)
	return b.withColumn(col, append(tasks, task))
}
