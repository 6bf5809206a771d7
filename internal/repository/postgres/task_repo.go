package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive-backend/internal/domain"
)

// TaskRepository implements domain.TaskRepository using PostgreSQL
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `id, title, description, completed, due_date, priority, user_id, list_id, created_at`

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*domain.Task, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, uuidToPg(id))
	return scanTask(row)
}

// GetAllByUser retrieves all tasks owned by userID
func (r *TaskRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Task, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at`, uuidToPg(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// GetAllByUserAndList retrieves tasks owned by userID within a list
func (r *TaskRepository) GetAllByUserAndList(userID, listID uuid.UUID) ([]*domain.Task, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND list_id = $2 ORDER BY created_at`,
		uuidToPg(userID), uuidToPg(listID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// Create creates a new task
func (r *TaskRepository) Create(task *domain.Task) (*domain.Task, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO tasks (title, description, completed, due_date, priority, user_id, list_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+taskColumns,
		task.Title, stringPtrToPgText(task.Description), task.Completed,
		timePtrToPg(task.DueDate), string(task.Priority),
		uuidToPg(task.UserID), uuidToPg(task.ListID))
	return scanTask(row)
}

// Update writes all mutable fields of the task
func (r *TaskRepository) Update(task *domain.Task) (*domain.Task, error) {
	row := r.pool.QueryRow(context.Background(),
		`UPDATE tasks
		 SET title = $2, description = $3, completed = $4, due_date = $5, priority = $6, list_id = $7
		 WHERE id = $1
		 RETURNING `+taskColumns,
		uuidToPg(task.ID), task.Title, stringPtrToPgText(task.Description),
		task.Completed, timePtrToPg(task.DueDate), string(task.Priority),
		uuidToPg(task.ListID))
	return scanTask(row)
}

// Delete removes a task by ID
func (r *TaskRepository) Delete(id uuid.UUID) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM tasks WHERE id = $1`, uuidToPg(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		id          pgtype.UUID
		title       string
		description pgtype.Text
		completed   bool
		dueDate     pgtype.Timestamptz
		priority    string
		userID      pgtype.UUID
		listID      pgtype.UUID
		createdAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &title, &description, &completed, &dueDate, &priority, &userID, &listID, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &domain.Task{
		ID:          pgToUUID(id),
		Title:       title,
		Description: pgTextToStringPtr(description),
		Completed:   completed,
		DueDate:     pgToTimePtr(dueDate),
		Priority:    domain.TaskPriority(priority),
		UserID:      pgToUUID(userID),
		ListID:      pgToUUID(listID),
		CreatedAt:   createdAt.Time,
	}, nil
}

func collectTasks(rows pgx.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}
