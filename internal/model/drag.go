package model

// Target is the surface a dragged task was released over: either another
// task or the empty area of a column.
type Target struct {
	ID       string
	IsColumn bool
}

// OverTask targets the card of another task
func OverTask(id TaskID) *Target {
	return &Target{ID: string(id)}
}

// OverColumn targets the surface of a column
func OverColumn(col ColumnID) *Target {
	return &Target{ID: string(col), IsColumn: true}
}

// MoveKind describes what a drop did to the board
type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveReorder
	MoveTransfer
)

func (k MoveKind) String() string {
	switch k {
	case MoveReorder:
		return "reorder"
	case MoveTransfer:
		return "transfer"
	default:
		return "none"
	}
}

// Move records the outcome of a drop
type Move struct {
	Kind  MoveKind
	Task  TaskID
	From  ColumnID
	To    ColumnID
	Index int // final position in To
}

// Drop applies a completed drag gesture. Any lookup that cannot be
// resolved leaves the board unchanged.
//
// A drop within the source column moves the task to the index held by the
// target task. A drop on another column appends the task to its tail.
func (b Board) Drop(active TaskID, over *Target) (Board, Move) {
	none := Move{Kind: MoveNone, Task: active}
	if over == nil {
		return b, none
	}

	source, from, ok := b.Locate(active)
	if !ok {
		return b, none
	}

	var target ColumnID
	overIndex := -1
	if over.IsColumn {
		target = ColumnID(over.ID)
		if !target.Valid() {
			return b, none
		}
	} else {
		target, overIndex, ok = b.Locate(TaskID(over.ID))
		if !ok {
			return b, none
		}
	}

	if source == target {
		if overIndex < 0 || overIndex == from {
			return b, none
		}
		tasks := moveWithin(b.columns[source], from, overIndex)
		return b.withColumn(source, tasks), Move{
			Kind:  MoveReorder,
			Task:  active,
			From:  source,
			To:    source,
			Index: overIndex,
		}
	}

	src := b.columns[source]
	remaining := make([]Task, 0, len(src)-1)
	remaining = append(remaining, src[:from]...)
	remaining = append(remaining, src[from+1:]...)

	dst := b.columns[target]
	moved := make([]Task, 0, len(dst)+1)
	moved = append(moved, dst...)
	moved = append(moved, src[from])

	next := b.withColumn(source, remaining).withColumn(target, moved)
	return next, Move{
		Kind:  MoveTransfer,
		Task:  active,
		From:  source,
		To:    target,
		Index: len(moved) - 1,
	}
}

// moveWithin returns a copy of tasks with the element at from moved to to.
// Elements between the two positions shift by one.
func moveWithin(tasks []Task, from, to int) []Task {
	out := make([]Task, 0, len(tasks))
	out = append(out, tasks[:from]...)
	out = append(out, tasks[from+1:]...)
	moved := tasks[from]
	out = append(out, Task{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
