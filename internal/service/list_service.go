package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/taskhive/taskhive-backend/internal/domain"
)

// ListService handles list-related business logic
type ListService struct {
	listRepo domain.ListRepository
}

// NewListService creates a new ListService
func NewListService(listRepo domain.ListRepository) *ListService {
	return &ListService{listRepo: listRepo}
}

// CreateListInput holds the input for creating a list
type CreateListInput struct {
	Name        string
	WorkspaceID *uuid.UUID
}

// UpdateListInput holds the partial fields for updating a list. Nil fields
// are left untouched.
type UpdateListInput struct {
	Name        *string
	WorkspaceID *uuid.UUID
}

// GetLists retrieves all lists owned by userID.
func (s *ListService) GetLists(userID uuid.UUID) ([]*domain.List, error) {
	return s.listRepo.GetAllByUser(userID)
}

// GetListByID retrieves a list visible to userID. A list owned by someone
// else yields not-found so its existence is never disclosed.
func (s *ListService) GetListByID(userID, id uuid.UUID) (*domain.List, error) {
	return fetchVisible(s.listRepo.GetByID, userID, id, domain.ErrListNotFound)
}

// CreateList creates a list owned by userID.
func (s *ListService) CreateList(userID uuid.UUID, input CreateListInput) (*domain.List, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	list, err := s.listRepo.Create(&domain.List{
		Name:        name,
		UserID:      userID,
		WorkspaceID: input.WorkspaceID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create list")
		return nil, err
	}

	return list, nil
}

// UpdateList applies the fields present in input to an existing list owned
// by userID.
func (s *ListService) UpdateList(userID, id uuid.UUID, input UpdateListInput) (*domain.List, error) {
	list, err := fetchOwned(s.listRepo.GetByID, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrNameRequired
		}
		list.Name = name
	}
	if input.WorkspaceID != nil {
		list.WorkspaceID = input.WorkspaceID
	}

	updated, err := s.listRepo.Update(list)
	if err != nil {
		log.Error().Err(err).Str("list_id", id.String()).Msg("Failed to update list")
		return nil, err
	}
	return updated, nil
}

// DeleteList deletes a list owned by userID. Tasks in the list are kept.
func (s *ListService) DeleteList(userID, id uuid.UUID) error {
	if _, err := fetchOwned(s.listRepo.GetByID, userID, id); err != nil {
		return err
	}
	return s.listRepo.Delete(id)
}
