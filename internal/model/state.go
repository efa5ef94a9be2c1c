package model

import "strings"

// State is everything the board screen owns: the board itself, the text
// typed into each column's input and the task currently being dragged.
type State struct {
	Board   Board
	Pending map[ColumnID]string
	Active  TaskID // empty when no drag is in progress
	Last    Change // outcome of the most recent event
}

// ChangeKind describes the effect of an event on the board
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeReorder
	ChangeTransfer
	ChangeAppend
)

// Change reports how the last event altered the board
type Change struct {
	Kind ChangeKind
	Task Task
	From ColumnID
	To   ColumnID
}

// Event is a message delivered to the state
type Event interface {
	apply(State) State
}

// BeginDrag starts dragging a task
type BeginDrag struct {
	Task TaskID
}

// EndDrag finishes a drag. A nil Over means the task was released over
// nothing and the drag is cancelled.
type EndDrag struct {
	Task TaskID
	Over *Target
}

// SetPending replaces a column's input buffer
type SetPending struct {
	Column ColumnID
	Text   string
}

// Submit turns a column's input buffer into a new task
type Submit struct {
	Column ColumnID
}

// NewState wraps a board with empty input buffers and no active drag
func NewState(board Board) State {
	pending := make(map[ColumnID]string, len(columnOrder))
	for _, col := range columnOrder {
		pending[col] = ""
	}
	return State{Board: board, Pending: pending}
}

// Apply returns the state that results from handling e
func (s State) Apply(e Event) State {
	s.Last = Change{}
	return e.apply(s)
}

// Dragging reports whether a drag is in progress
func (s State) Dragging() bool {
	return s.Active != ""
}

// PendingFor returns the input buffer of a column
func (s State) PendingFor(col ColumnID) string {
	return s.Pending[col]
}

func (s State) withPending(col ColumnID, text string) State {
	pending := make(map[ColumnID]string, len(columnOrder))
	for k, v := range s.Pending {
		pending[k] = v
	}
	pending[col] = text
	s.Pending = pending
	return s
}

func (e BeginDrag) apply(s State) State {
	if _, ok := s.Board.Task(e.Task); !ok {
		return s
	}
	s.Active = e.Task
	return s
}

func (e EndDrag) apply(s State) State {
	s.Active = ""
	task, ok := s.Board.Task(e.Task)
	if !ok {
		return s
	}
	board, move := s.Board.Drop(e.Task, e.Over)
	s.Board = board
	switch move.Kind {
	case MoveReorder:
		s.Last = Change{Kind: ChangeReorder, Task: task, From: move.From, To: move.To}
	case MoveTransfer:
		s.Last = Change{Kind: ChangeTransfer, Task: task, From: move.From, To: move.To}
	}
	return s
}

func (e SetPending) apply(s State) State {
	if !e.Column.Valid() {
		return s
	}
	return s.withPending(e.Column, e.Text)
}

func (e Submit) apply(s State) State {
	if !e.Column.Valid() {
		return s
	}
	text := s.Pending[e.Column]
	if strings.TrimSpace(text) == "" {
		return s
	}
	task := NewTask(text)
	s.Board = s.Board.Append(e.Column, task)
	s.Last = Change{Kind: ChangeAppend, Task: task, To: e.Column}
	return s.withPending(e.Column, "")
}

func (k ChangeKind) String() string {
	switch k {
	case ChangeReorder:
		return "reorder"
	case ChangeTransfer:
		return "transfer"
	case ChangeAppend:
		return "append"
	default:
		return "none"
	}
}
