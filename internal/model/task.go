package model

import "github.com/google/uuid"

// TaskID is the opaque identity of a task. It is independent of the label,
// so two tasks may share the same text.
type TaskID string

// Task represents a single card on the board
type Task struct {
	ID    TaskID
	Label string
}

// NewTask creates a task with a fresh identifier
func NewTask(label string) Task {
	return Task{
		ID:    TaskID(uuid.NewString()),
		Label: label,
	}
}
