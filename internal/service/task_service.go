package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/taskhive/taskhive-backend/internal/domain"
)

// TaskService handles task-related business logic
type TaskService struct {
	taskRepo domain.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo domain.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput holds the input for creating a task
type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    domain.TaskPriority
	ListID      uuid.UUID
}

// UpdateTaskInput holds the partial fields for updating a task. Nil fields
// are left untouched. ClearDueDate removes the due date; it wins over
// DueDate.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Completed    *bool
	DueDate      *time.Time
	ClearDueDate bool
	Priority     *domain.TaskPriority
	ListID       *uuid.UUID
}

// GetTasks retrieves all tasks owned by userID, optionally scoped to a list.
func (s *TaskService) GetTasks(userID uuid.UUID, listID *uuid.UUID) ([]*domain.Task, error) {
	if listID != nil {
		return s.taskRepo.GetAllByUserAndList(userID, *listID)
	}
	return s.taskRepo.GetAllByUser(userID)
}

// GetTaskByID retrieves a task visible to userID. A task owned by someone
// else yields not-found so its existence is never disclosed.
func (s *TaskService) GetTaskByID(userID, id uuid.UUID) (*domain.Task, error) {
	return fetchVisible(s.taskRepo.GetByID, userID, id, domain.ErrTaskNotFound)
}

// CreateTask creates a task owned by userID. Caller-supplied owner fields
// are never honored; the acting identity always becomes the owner.
func (s *TaskService) CreateTask(userID uuid.UUID, input CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}
	if input.ListID == uuid.Nil {
		return nil, domain.ErrListIDRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, domain.ErrInvalidPriority
	}

	task, err := s.taskRepo.Create(&domain.Task{
		Title:       title,
		Description: input.Description,
		Completed:   false,
		DueDate:     input.DueDate,
		Priority:    priority,
		UserID:      userID,
		ListID:      input.ListID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create task")
		return nil, err
	}

	return task, nil
}

// UpdateTask applies the fields present in input to an existing task owned
// by userID. Absent fields are left unchanged.
func (s *TaskService) UpdateTask(userID, id uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	task, err := fetchOwned(s.taskRepo.GetByID, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Priority != nil {
		if !domain.ValidPriority(*input.Priority) {
			return nil, domain.ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.ListID != nil {
		if *input.ListID == uuid.Nil {
			return nil, domain.ErrListIDRequired
		}
		task.ListID = *input.ListID
	}

	updated, err := s.taskRepo.Update(task)
	if err != nil {
		log.Error().Err(err).Str("task_id", id.String()).Msg("Failed to update task")
		return nil, err
	}
	return updated, nil
}

// DeleteTask deletes a task owned by userID. Tasks referencing the deleted
// task's list are untouched; there is no cascade anywhere.
func (s *TaskService) DeleteTask(userID, id uuid.UUID) error {
	if _, err := fetchOwned(s.taskRepo.GetByID, userID, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(id)
}
