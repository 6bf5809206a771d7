package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/taskhive/taskhive-backend/internal/domain"
	"github.com/taskhive/taskhive-backend/internal/middleware"
	"github.com/taskhive/taskhive-backend/internal/service"
)

// WorkspaceHandler handles workspace-related HTTP requests
type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
}

// NewWorkspaceHandler creates a new WorkspaceHandler
func NewWorkspaceHandler(workspaceService *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// CreateWorkspaceRequest represents the create workspace request body
type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

// UpdateWorkspaceRequest represents the partial update request body.
// Members are managed through the member endpoints, not here.
type UpdateWorkspaceRequest struct {
	Name *string `json:"name"`
}

// AddMemberRequest represents the add member request body
type AddMemberRequest struct {
	UserID string `json:"userId"`
}

// WorkspaceResponse represents a workspace in API responses
type WorkspaceResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	OwnerID   string   `json:"ownerId"`
	Members   []string `json:"members"`
	CreatedAt string   `json:"createdAt"`
}

// CreateWorkspace handles POST /api/workspaces
func (h *WorkspaceHandler) CreateWorkspace(c echo.Context) error {
	userID := middleware.GetUserID(c)

	var req CreateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	workspace, err := h.workspaceService.CreateWorkspace(userID, service.CreateWorkspaceInput{Name: req.Name})
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create workspace")
		return NewInternalError(c, "Failed to create workspace")
	}

	return c.JSON(http.StatusCreated, toWorkspaceResponse(workspace))
}

// GetWorkspaces handles GET /api/workspaces
func (h *WorkspaceHandler) GetWorkspaces(c echo.Context) error {
	userID := middleware.GetUserID(c)

	workspaces, err := h.workspaceService.GetWorkspaces(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get workspaces")
		return NewInternalError(c, "Failed to get workspaces")
	}

	response := make([]WorkspaceResponse, len(workspaces))
	for i, workspace := range workspaces {
		response[i] = toWorkspaceResponse(workspace)
	}
	return c.JSON(http.StatusOK, response)
}

// GetWorkspace handles GET /api/workspaces/:id
func (h *WorkspaceHandler) GetWorkspace(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid workspace ID", nil)
	}

	workspace, err := h.workspaceService.GetWorkspaceByID(userID, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "You do not have access to this workspace")
		}
		log.Error().Err(err).Str("workspace_id", id.String()).Msg("Failed to get workspace")
		return NewInternalError(c, "Failed to get workspace")
	}

	return c.JSON(http.StatusOK, toWorkspaceResponse(workspace))
}

// UpdateWorkspace handles PUT /api/workspaces/:id
func (h *WorkspaceHandler) UpdateWorkspace(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid workspace ID", nil)
	}

	var req UpdateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	workspace, err := h.workspaceService.UpdateWorkspace(userID, id, service.UpdateWorkspaceInput{Name: req.Name})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Only the owner can update this workspace")
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Str("workspace_id", id.String()).Msg("Failed to update workspace")
		return NewInternalError(c, "Failed to update workspace")
	}

	return c.JSON(http.StatusOK, toWorkspaceResponse(workspace))
}

// DeleteWorkspace handles DELETE /api/workspaces/:id. Lists referencing the
// workspace survive.
func (h *WorkspaceHandler) DeleteWorkspace(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid workspace ID", nil)
	}

	if err := h.workspaceService.DeleteWorkspace(userID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Only the owner can delete this workspace")
		}
		log.Error().Err(err).Str("workspace_id", id.String()).Msg("Failed to delete workspace")
		return NewInternalError(c, "Failed to delete workspace")
	}

	return c.JSON(http.StatusOK, DeleteResponse{Message: "Workspace deleted"})
}

// AddMember handles POST /api/workspaces/:id/members
func (h *WorkspaceHandler) AddMember(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid workspace ID", nil)
	}

	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		return NewValidationError(c, "Invalid member ID", []ValidationError{
			{Field: "userId", Message: "Must be a valid ID"},
		})
	}

	workspace, err := h.workspaceService.AddMember(userID, id, memberID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Only the owner can manage members")
		case errors.Is(err, domain.ErrMemberExists):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "userId", Message: "User is already a member"},
			})
		}
		log.Error().Err(err).Str("workspace_id", id.String()).Msg("Failed to add member")
		return NewInternalError(c, "Failed to add member")
	}

	return c.JSON(http.StatusOK, toWorkspaceResponse(workspace))
}

// RemoveMember handles DELETE /api/workspaces/:id/members/:memberId.
// Removing a user who is not a member succeeds with no effect.
func (h *WorkspaceHandler) RemoveMember(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid workspace ID", nil)
	}

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		return NewValidationError(c, "Invalid member ID", nil)
	}

	workspace, err := h.workspaceService.RemoveMember(userID, id, memberID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Only the owner can manage members")
		}
		log.Error().Err(err).Str("workspace_id", id.String()).Msg("Failed to remove member")
		return NewInternalError(c, "Failed to remove member")
	}

	return c.JSON(http.StatusOK, toWorkspaceResponse(workspace))
}

func toWorkspaceResponse(workspace *domain.Workspace) WorkspaceResponse {
	members := make([]string, len(workspace.Members))
	for i, m := range workspace.Members {
		members[i] = m.String()
	}
	return WorkspaceResponse{
		ID:        workspace.ID.String(),
		Name:      workspace.Name,
		OwnerID:   workspace.OwnerID.String(),
		Members:   members,
		CreatedAt: workspace.CreatedAt.Format(time.RFC3339),
	}
}
