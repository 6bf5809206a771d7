package handler

import (
	"bytes"
	"encoding/json"
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

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents the create task request body. Any
// caller-supplied owner field is ignored; the authenticated identity always
// becomes the owner.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    string  `json:"priority"`
	ListID      string  `json:"listId"`
}

// UpdateTaskRequest represents the partial update request body. Absent
// fields leave the task untouched; dueDate set to JSON null clears it.
type UpdateTaskRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Completed   *bool           `json:"completed"`
	DueDate     json.RawMessage `json:"dueDate"`
	Priority    *string         `json:"priority"`
	ListID      *string         `json:"listId"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"dueDate"`
	Priority    string  `json:"priority"`
	UserID      string  `json:"userId"`
	ListID      string  `json:"listId"`
	CreatedAt   string  `json:"createdAt"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Message string `json:"message"`
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID := middleware.GetUserID(c)

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
	}

	if req.ListID != "" {
		listID, err := uuid.Parse(req.ListID)
		if err != nil {
			return NewValidationError(c, "Invalid list ID", []ValidationError{
				{Field: "listId", Message: "Must be a valid ID"},
			})
		}
		input.ListID = listID
	}

	if req.DueDate != nil {
		due, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			return NewValidationError(c, "Invalid due date", []ValidationError{
				{Field: "dueDate", Message: "Must be an RFC 3339 timestamp"},
			})
		}
		input.DueDate = &due
	}

	task, err := h.taskService.CreateTask(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTitleRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "title", Message: "Title is required"},
			})
		case errors.Is(err, domain.ErrListIDRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "listId", Message: "listId is required"},
			})
		case errors.Is(err, domain.ErrInvalidPriority):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "priority", Message: "Priority must be one of: low, medium, high"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create task")
		return NewInternalError(c, "Failed to create task")
	}

	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// GetTasks handles GET /api/tasks with an optional listId query param
func (h *TaskHandler) GetTasks(c echo.Context) error {
	userID := middleware.GetUserID(c)

	var listID *uuid.UUID
	if raw := c.QueryParam("listId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return NewValidationError(c, "Invalid list ID", nil)
		}
		listID = &id
	}

	tasks, err := h.taskService.GetTasks(userID, listID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get tasks")
		return NewInternalError(c, "Failed to get tasks")
	}

	response := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = toTaskResponse(task)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTask handles GET /api/tasks/:id
func (h *TaskHandler) GetTask(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid task ID", nil)
	}

	task, err := h.taskService.GetTaskByID(userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return NewNotFoundError(c, "Task not found")
		}
		log.Error().Err(err).Str("task_id", id.String()).Msg("Failed to get task")
		return NewInternalError(c, "Failed to get task")
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateTask handles PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid task ID", nil)
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	if req.ListID != nil {
		listID, err := uuid.Parse(*req.ListID)
		if err != nil {
			return NewValidationError(c, "Invalid list ID", []ValidationError{
				{Field: "listId", Message: "Must be a valid ID"},
			})
		}
		input.ListID = &listID
	}

	// dueDate: absent leaves the field alone, null clears it
	if len(req.DueDate) > 0 {
		if bytes.Equal(bytes.TrimSpace(req.DueDate), []byte("null")) {
			input.ClearDueDate = true
		} else {
			var raw string
			if err := json.Unmarshal(req.DueDate, &raw); err != nil {
				return NewValidationError(c, "Invalid due date", nil)
			}
			due, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return NewValidationError(c, "Invalid due date", []ValidationError{
					{Field: "dueDate", Message: "Must be an RFC 3339 timestamp"},
				})
			}
			input.DueDate = &due
		}
	}

	task, err := h.taskService.UpdateTask(userID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			return NewNotFoundError(c, "Task not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "You do not own this task")
		case errors.Is(err, domain.ErrTitleRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "title", Message: "Title is required"},
			})
		case errors.Is(err, domain.ErrListIDRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "listId", Message: "listId is required"},
			})
		case errors.Is(err, domain.ErrInvalidPriority):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "priority", Message: "Priority must be one of: low, medium, high"},
			})
		}
		log.Error().Err(err).Str("task_id", id.String()).Msg("Failed to update task")
		return NewInternalError(c, "Failed to update task")
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// DeleteTask handles DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid task ID", nil)
	}

	if err := h.taskService.DeleteTask(userID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			return NewNotFoundError(c, "Task not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "You do not own this task")
		}
		log.Error().Err(err).Str("task_id", id.String()).Msg("Failed to delete task")
		return NewInternalError(c, "Failed to delete task")
	}

	return c.JSON(http.StatusOK, DeleteResponse{Message: "Task deleted"})
}

func toTaskResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    string(task.Priority),
		UserID:      task.UserID.String(),
		ListID:      task.ListID.String(),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}
