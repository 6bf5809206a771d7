package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/taskhive/taskhive-backend/internal/domain"
)

// WorkspaceService handles workspace-related business logic
type WorkspaceService struct {
	workspaceRepo domain.WorkspaceRepository
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(workspaceRepo domain.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaceRepo: workspaceRepo}
}

// CreateWorkspaceInput holds the input for creating a workspace
type CreateWorkspaceInput struct {
	Name string
}

// UpdateWorkspaceInput holds the partial fields for updating a workspace.
// Membership is mutated through AddMember/RemoveMember only.
type UpdateWorkspaceInput struct {
	Name *string
}

// GetWorkspaces retrieves all workspaces userID owns or is a member of.
func (s *WorkspaceService) GetWorkspaces(userID uuid.UUID) ([]*domain.Workspace, error) {
	return s.workspaceRepo.GetAllVisible(userID)
}

// GetWorkspaceByID retrieves a workspace visible to userID. Unlike tasks and
// lists, an existing workspace the actor may not see yields forbidden, not
// not-found.
func (s *WorkspaceService) GetWorkspaceByID(userID, id uuid.UUID) (*domain.Workspace, error) {
	return fetchVisible(s.workspaceRepo.GetByID, userID, id, domain.ErrForbidden)
}

// CreateWorkspace creates a workspace owned by userID.
func (s *WorkspaceService) CreateWorkspace(userID uuid.UUID, input CreateWorkspaceInput) (*domain.Workspace, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	workspace, err := s.workspaceRepo.Create(&domain.Workspace{
		Name:    name,
		OwnerID: userID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create workspace")
		return nil, err
	}

	return workspace, nil
}

// UpdateWorkspace applies the fields present in input. Owner only;
// membership does not grant update rights.
func (s *WorkspaceService) UpdateWorkspace(userID, id uuid.UUID, input UpdateWorkspaceInput) (*domain.Workspace, error) {
	workspace, err := fetchOwned(s.workspaceRepo.GetByID, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrNameRequired
		}
		workspace.Name = name
	}

	updated, err := s.workspaceRepo.Update(workspace)
	if err != nil {
		log.Error().Err(err).Str("workspace_id", id.String()).Msg("Failed to update workspace")
		return nil, err
	}
	return updated, nil
}

// DeleteWorkspace deletes a workspace owned by userID. Lists referencing it
// are kept.
func (s *WorkspaceService) DeleteWorkspace(userID, id uuid.UUID) error {
	if _, err := fetchOwned(s.workspaceRepo.GetByID, userID, id); err != nil {
		return err
	}
	return s.workspaceRepo.Delete(id)
}

// AddMember grants memberID read access to the workspace. Owner only.
// The duplicate check runs against the loaded snapshot; two concurrent adds
// can race (last-writer-wins, no optimistic concurrency control).
func (s *WorkspaceService) AddMember(actorID, workspaceID, memberID uuid.UUID) (*domain.Workspace, error) {
	workspace, err := fetchOwned(s.workspaceRepo.GetByID, actorID, workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace.HasMember(memberID) {
		return nil, domain.ErrMemberExists
	}

	if err := s.workspaceRepo.AddMember(workspaceID, memberID); err != nil {
		log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to add member")
		return nil, err
	}

	workspace.Members = append(workspace.Members, memberID)
	log.Info().Str("workspace_id", workspaceID.String()).Str("member_id", memberID.String()).Msg("Member added")
	return workspace, nil
}

// RemoveMember revokes memberID's access. Owner only; removing an absent
// member is a no-op.
func (s *WorkspaceService) RemoveMember(actorID, workspaceID, memberID uuid.UUID) (*domain.Workspace, error) {
	workspace, err := fetchOwned(s.workspaceRepo.GetByID, actorID, workspaceID)
	if err != nil {
		return nil, err
	}

	if err := s.workspaceRepo.RemoveMember(workspaceID, memberID); err != nil {
		log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to remove member")
		return nil, err
	}

	members := workspace.Members[:0]
	for _, m := range workspace.Members {
		if m != memberID {
			members = append(members, m)
		}
	}
	workspace.Members = members
	return workspace, nil
}
