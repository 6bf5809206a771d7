package domain

import "errors"

// Domain errors
var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrUserNotFound      = errors.New("user not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrListNotFound      = errors.New("list not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")

	ErrEmailTaken       = errors.New("email already registered")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrTitleRequired    = errors.New("title is required")
	ErrNameRequired     = errors.New("name is required")
	ErrListIDRequired   = errors.New("listId is required")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrMemberExists     = errors.New("member already in workspace")
)
