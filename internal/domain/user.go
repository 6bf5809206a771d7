package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user. PasswordHash is never serialized to
// clients.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	GetByID(id uuid.UUID) (*User, error)
	GetByEmail(email string) (*User, error)
	Create(user *User) (*User, error)
}
