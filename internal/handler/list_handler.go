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

// ListHandler handles list-related HTTP requests
type ListHandler struct {
	listService *service.ListService
}

// NewListHandler creates a new ListHandler
func NewListHandler(listService *service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// CreateListRequest represents the create list request body
type CreateListRequest struct {
	Name        string  `json:"name"`
	WorkspaceID *string `json:"workspaceId"`
}

// UpdateListRequest represents the partial update request body
type UpdateListRequest struct {
	Name        *string `json:"name"`
	WorkspaceID *string `json:"workspaceId"`
}

// ListResponse represents a list in API responses
type ListResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	UserID      string  `json:"userId"`
	WorkspaceID *string `json:"workspaceId"`
	CreatedAt   string  `json:"createdAt"`
}

// CreateList handles POST /api/lists
func (h *ListHandler) CreateList(c echo.Context) error {
	userID := middleware.GetUserID(c)

	var req CreateListRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.CreateListInput{Name: req.Name}
	if req.WorkspaceID != nil {
		workspaceID, err := uuid.Parse(*req.WorkspaceID)
		if err != nil {
			return NewValidationError(c, "Invalid workspace ID", []ValidationError{
				{Field: "workspaceId", Message: "Must be a valid ID"},
			})
		}
		input.WorkspaceID = &workspaceID
	}

	list, err := h.listService.CreateList(userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create list")
		return NewInternalError(c, "Failed to create list")
	}

	return c.JSON(http.StatusCreated, toListResponse(list))
}

// GetLists handles GET /api/lists
func (h *ListHandler) GetLists(c echo.Context) error {
	userID := middleware.GetUserID(c)

	lists, err := h.listService.GetLists(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get lists")
		return NewInternalError(c, "Failed to get lists")
	}

	response := make([]ListResponse, len(lists))
	for i, list := range lists {
		response[i] = toListResponse(list)
	}
	return c.JSON(http.StatusOK, response)
}

// GetList handles GET /api/lists/:id
func (h *ListHandler) GetList(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid list ID", nil)
	}

	list, err := h.listService.GetListByID(userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			return NewNotFoundError(c, "List not found")
		}
		log.Error().Err(err).Str("list_id", id.String()).Msg("Failed to get list")
		return NewInternalError(c, "Failed to get list")
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

// UpdateList handles PUT /api/lists/:id
func (h *ListHandler) UpdateList(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid list ID", nil)
	}

	var req UpdateListRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.UpdateListInput{Name: req.Name}
	if req.WorkspaceID != nil {
		workspaceID, err := uuid.Parse(*req.WorkspaceID)
		if err != nil {
			return NewValidationError(c, "Invalid workspace ID", []ValidationError{
				{Field: "workspaceId", Message: "Must be a valid ID"},
			})
		}
		input.WorkspaceID = &workspaceID
	}

	list, err := h.listService.UpdateList(userID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListNotFound):
			return NewNotFoundError(c, "List not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "You do not own this list")
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Str("list_id", id.String()).Msg("Failed to update list")
		return NewInternalError(c, "Failed to update list")
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

// DeleteList handles DELETE /api/lists/:id. Tasks in the list survive.
func (h *ListHandler) DeleteList(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid list ID", nil)
	}

	if err := h.listService.DeleteList(userID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrListNotFound):
			return NewNotFoundError(c, "List not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "You do not own this list")
		}
		log.Error().Err(err).Str("list_id", id.String()).Msg("Failed to delete list")
		return NewInternalError(c, "Failed to delete list")
	}

	return c.JSON(http.StatusOK, DeleteResponse{Message: "List deleted"})
}

func toListResponse(list *domain.List) ListResponse {
	resp := ListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		UserID:    list.UserID.String(),
		CreatedAt: list.CreatedAt.Format(time.RFC3339),
	}
	if list.WorkspaceID != nil {
		id := list.WorkspaceID.String()
		resp.WorkspaceID = &id
	}
	return resp
}
