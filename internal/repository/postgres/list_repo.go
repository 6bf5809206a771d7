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

// ListRepository implements domain.ListRepository using PostgreSQL
type ListRepository struct {
	pool *pgxpool.Pool
}

// NewListRepository creates a new ListRepository
func NewListRepository(pool *pgxpool.Pool) *ListRepository {
	return &ListRepository{pool: pool}
}

const listColumns = `id, name, user_id, workspace_id, created_at`

// GetByID retrieves a list by its ID
func (r *ListRepository) GetByID(id uuid.UUID) (*domain.List, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+listColumns+` FROM lists WHERE id = $1`, uuidToPg(id))
	return scanList(row)
}

// GetAllByUser retrieves all lists owned by userID
func (r *ListRepository) GetAllByUser(userID uuid.UUID) ([]*domain.List, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+listColumns+` FROM lists WHERE user_id = $1 ORDER BY created_at`, uuidToPg(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*domain.List
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lists, nil
}

// Create creates a new list
func (r *ListRepository) Create(list *domain.List) (*domain.List, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO lists (name, user_id, workspace_id)
		 VALUES ($1, $2, $3)
		 RETURNING `+listColumns,
		list.Name, uuidToPg(list.UserID), uuidPtrToPg(list.WorkspaceID))
	return scanList(row)
}

// Update writes all mutable fields of the list
func (r *ListRepository) Update(list *domain.List) (*domain.List, error) {
	row := r.pool.QueryRow(context.Background(),
		`UPDATE lists SET name = $2, workspace_id = $3 WHERE id = $1
		 RETURNING `+listColumns,
		uuidToPg(list.ID), list.Name, uuidPtrToPg(list.WorkspaceID))
	return scanList(row)
}

// Delete removes a list by ID. Tasks referencing the list are kept.
func (r *ListRepository) Delete(id uuid.UUID) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM lists WHERE id = $1`, uuidToPg(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListNotFound
	}
	return nil
}

func scanList(row pgx.Row) (*domain.List, error) {
	var (
		id          pgtype.UUID
		name        string
		userID      pgtype.UUID
		workspaceID pgtype.UUID
		createdAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &userID, &workspaceID, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, err
	}
	return &domain.List{
		ID:          pgToUUID(id),
		Name:        name,
		UserID:      pgToUUID(userID),
		WorkspaceID: pgToUUIDPtr(workspaceID),
		CreatedAt:   createdAt.Time,
	}, nil
}
