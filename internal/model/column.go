package model

// ColumnID identifies one of the fixed board columns
type ColumnID string

const (
	ColumnTodo  ColumnID = "todo"
	ColumnDoing ColumnID = "doing"
	ColumnDone  ColumnID = "done"
)

var columnOrder = [...]ColumnID{ColumnTodo, ColumnDoing, ColumnDone}

// Columns returns every column in display order
func Columns() []ColumnID {
	cols := columnOrder
	return cols[:]
}

// Index returns the display position of the column, or -1 if it is not a board column
func (c ColumnID) Index() int {
	for i, col := range columnOrder {
		if col == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is one of the board columns
func (c ColumnID) Valid() bool {
	return c.Index() >= 0
}

// ColumnAt returns the column at display position i
func ColumnAt(i int) (ColumnID, bool) {
	if i < 0 || i >= len(columnOrder) {
		return "", false
	}
	return columnOrder[i], true
}
