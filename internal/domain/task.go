package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single todo item. Tasks are strictly private to their owner.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Completed   bool         `json:"completed"`
	DueDate     *time.Time   `json:"dueDate"`
	Priority    TaskPriority `json:"priority"`
	UserID      uuid.UUID    `json:"userId"`
	ListID      uuid.UUID    `json:"listId"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// OwnedBy reports whether userID owns the task.
func (t *Task) OwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

// VisibleTo matches OwnedBy: tasks are strictly private.
func (t *Task) VisibleTo(userID uuid.UUID) bool {
	return t.OwnedBy(userID)
}

// TaskRepository defines the interface for task persistence operations
type TaskRepository interface {
	GetByID(id uuid.UUID) (*Task, error)
	GetAllByUser(userID uuid.UUID) ([]*Task, error)
	GetAllByUserAndList(userID, listID uuid.UUID) ([]*Task, error)
	Create(task *Task) (*Task, error)
	Update(task *Task) (*Task, error)
	Delete(id uuid.UUID) error
}
