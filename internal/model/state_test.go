package model

import "testing"

func seedState() State {
	return NewState(boardFromLabels([]string{"A", "B"}, []string{"C"}, nil))
}

func TestDragLifecycle(t *testing.T) {
	s := seedState()
	if s.Dragging() {
		t.Fatal("new state should be idle")
	}

	s = s.Apply(BeginDrag{Task: "A"})
	if s.Active != "A" {
		t.Fatalf("Active: got %q, want A", s.Active)
	}

	s = s.Apply(EndDrag{Task: "A", Over: OverTask("B")})
	if s.Dragging() {
		t.Error("drag should be cleared after drop")
	}
	assertLabels(t, s.Board, ColumnTodo, []string{"B", "A"})
	if s.Last.Kind != ChangeReorder || s.Last.Task.Label != "A" {
		t.Errorf("Last: got %+v", s.Last)
	}
}

func TestBeginDragUnknownTask(t *testing.T) {
	s := seedState().Apply(BeginDrag{Task: "missing"})
	if s.Dragging() {
		t.Errorf("Active: got %q, want empty", s.Active)
	}
}

func TestEndDragCancelled(t *testing.T) {
	before := seedState()
	s := before.Apply(BeginDrag{Task: "C"}).Apply(EndDrag{Task: "C"})

	if s.Dragging() {
		t.Error("cancelled drag should clear Active")
	}
	if !s.Board.Equal(before.Board) {
		t.Error("cancelled drag changed the board")
	}
	if s.Last.Kind != ChangeNone {
		t.Errorf("Last: got %+v, want none", s.Last)
	}
}

func TestEndDragClearsActiveOnNoOp(t *testing.T) {
	s := seedState().Apply(BeginDrag{Task: "A"})
	s = s.Apply(EndDrag{Task: "A", Over: OverTask("nope")})
	if s.Dragging() {
		t.Error("Active should be cleared even when the drop is a no-op")
	}
}

func TestSubmitAppendsRawText(t *testing.T) {
	s := seedState()
	s = s.Apply(SetPending{Column: ColumnDoing, Text: "Write tests"})
	s = s.Apply(Submit{Column: ColumnDoing})

	assertLabels(t, s.Board, ColumnDoing, []string{"C", "Write tests"})
	if got := s.PendingFor(ColumnDoing); got != "" {
		t.Errorf("pending: got %q, want empty", got)
	}
	if s.Last.Kind != ChangeAppend || s.Last.To != ColumnDoing {
		t.Errorf("Last: got %+v", s.Last)
	}

	s = s.Apply(SetPending{Column: ColumnDone, Text: "  padded  "})
	s = s.Apply(Submit{Column: ColumnDone})
	assertLabels(t, s.Board, ColumnDone, []string{"  padded  "})
}

func TestSubmitBlankIsNoOp(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		before := seedState().Apply(SetPending{Column: ColumnTodo, Text: text})
		after := before.Apply(Submit{Column: ColumnTodo})

		if !after.Board.Equal(before.Board) {
			t.Errorf("%q: board changed", text)
		}
		if got := after.PendingFor(ColumnTodo); got != text {
			t.Errorf("%q: pending got %q", text, got)
		}
	}
}

func TestSubmitAllowsDuplicateLabels(t *testing.T) {
	s := seedState()
	s = s.Apply(SetPending{Column: ColumnTodo, Text: "A"}).Apply(Submit{Column: ColumnTodo})

	tasks := s.Board.Tasks(ColumnTodo)
	if len(tasks) != 3 {
		t.Fatalf("todo: got %d tasks, want 3", len(tasks))
	}
	if tasks[2].Label != "A" || tasks[2].ID == tasks[0].ID {
		t.Errorf("duplicate label should get its own id: %+v", tasks)
	}
}

func TestSetPendingIsolated(t *testing.T) {
	before := seedState()
	after := before.Apply(SetPending{Column: ColumnTodo, Text: "draft"})

	if after.PendingFor(ColumnTodo) != "draft" {
		t.Errorf("todo pending: got %q", after.PendingFor(ColumnTodo))
	}
	if before.PendingFor(ColumnTodo) != "" {
		t.Error("previous state was modified")
	}
	if after.PendingFor(ColumnDoing) != "" {
		t.Error("other column pending changed")
	}

	unchanged := after.Apply(SetPending{Column: "backlog", Text: "x"})
	if _, ok := unchanged.Pending["backlog"]; ok {
		t.Error("unknown column should be ignored")
	}
}

func TestNewBoardAssignsIDs(t *testing.T) {
	b := NewBoard(map[ColumnID][]string{
		ColumnTodo: {"one", "one"},
		"backlog":  {"ignored"},
	})
	tasks := b.Tasks(ColumnTodo)
	if len(tasks) != 2 || tasks[0].ID == "" || tasks[0].ID == tasks[1].ID {
		t.Errorf("tasks: got %+v", tasks)
	}
	if b.Len() != 2 {
		t.Errorf("Len: got %d, want 2", b.Len())
	}
}
