package service

import (
	"github.com/google/uuid"

	"github.com/taskhive/taskhive-backend/internal/domain"
)

// guarded is implemented by resources gated by an ownership/visibility
// predicate.
type guarded interface {
	OwnedBy(userID uuid.UUID) bool
	VisibleTo(userID uuid.UUID) bool
}

// fetchVisible loads a resource and applies the kind's visibility rule for
// reads. onHidden is returned when the resource exists but the actor may not
// observe it: tasks and lists hide existence (not-found), workspaces deny
// explicitly (forbidden).
func fetchVisible[T guarded](get func(uuid.UUID) (T, error), actorID, id uuid.UUID, onHidden error) (T, error) {
	var zero T
	res, err := get(id)
	if err != nil {
		return zero, err
	}
	if !res.VisibleTo(actorID) {
		return zero, onHidden
	}
	return res, nil
}

// fetchOwned loads a resource for mutation. Only the owner may mutate or
// delete; everyone else gets forbidden regardless of kind.
func fetchOwned[T guarded](get func(uuid.UUID) (T, error), actorID, id uuid.UUID) (T, error) {
	var zero T
	res, err := get(id)
	if err != nil {
		return zero, err
	}
	if !res.OwnedBy(actorID) {
		return zero, domain.ErrForbidden
	}
	return res, nil
}
