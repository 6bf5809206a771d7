package domain

import (
	"time"

	"github.com/google/uuid"
)

// List groups tasks for a single user. It may optionally live inside a
// workspace, but workspace membership grants no rights over the list.
type List struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	UserID      uuid.UUID  `json:"userId"`
	WorkspaceID *uuid.UUID `json:"workspaceId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// OwnedBy reports whether userID owns the list.
func (l *List) OwnedBy(userID uuid.UUID) bool {
	return l.UserID == userID
}

// VisibleTo matches OwnedBy: lists are strictly private.
func (l *List) VisibleTo(userID uuid.UUID) bool {
	return l.OwnedBy(userID)
}

// ListRepository defines the interface for list persistence operations
type ListRepository interface {
	GetByID(id uuid.UUID) (*List, error)
	GetAllByUser(userID uuid.UUID) ([]*List, error)
	Create(list *List) (*List, error)
	Update(list *List) (*List, error)
	Delete(id uuid.UUID) error
}
