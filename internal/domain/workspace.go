package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is a shared container owned by exactly one user. The owner
// implicitly has full rights and does not need to appear in Members.
type Workspace struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	OwnerID   uuid.UUID   `json:"ownerId"`
	Members   []uuid.UUID `json:"members"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OwnedBy reports whether userID is the workspace owner.
func (w *Workspace) OwnedBy(userID uuid.UUID) bool {
	return w.OwnerID == userID
}

// HasMember reports whether userID appears in the member set.
func (w *Workspace) HasMember(userID uuid.UUID) bool {
	for _, m := range w.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// VisibleTo reports whether userID may observe the workspace: owner or member.
func (w *Workspace) VisibleTo(userID uuid.UUID) bool {
	return w.OwnedBy(userID) || w.HasMember(userID)
}

// WorkspaceRepository defines the interface for workspace persistence operations
type WorkspaceRepository interface {
	GetByID(id uuid.UUID) (*Workspace, error)
	GetAllVisible(userID uuid.UUID) ([]*Workspace, error)
	Create(workspace *Workspace) (*Workspace, error)
	Update(workspace *Workspace) (*Workspace, error)
	Delete(id uuid.UUID) error
	AddMember(workspaceID, memberID uuid.UUID) error
	RemoveMember(workspaceID, memberID uuid.UUID) error
}
