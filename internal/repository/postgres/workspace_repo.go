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

// WorkspaceRepository implements domain.WorkspaceRepository using PostgreSQL.
// Membership lives in the workspace_members join table.
type WorkspaceRepository struct {
	pool *pgxpool.Pool
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepository {
	return &WorkspaceRepository{pool: pool}
}

const workspaceColumns = `id, name, owner_id, created_at`

// GetByID retrieves a workspace with its member set
func (r *WorkspaceRepository) GetByID(id uuid.UUID) (*domain.Workspace, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+workspaceColumns+` FROM workspaces WHERE id = $1`, uuidToPg(id))
	workspace, err := scanWorkspace(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadMembers(workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

// GetAllVisible retrieves all workspaces userID owns or is a member of
func (r *WorkspaceRepository) GetAllVisible(userID uuid.UUID) ([]*domain.Workspace, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT DISTINCT w.id, w.name, w.owner_id, w.created_at
		 FROM workspaces w
		 LEFT JOIN workspace_members m ON m.workspace_id = w.id
		 WHERE w.owner_id = $1 OR m.user_id = $1
		 ORDER BY w.created_at`, uuidToPg(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workspaces []*domain.Workspace
	for rows.Next() {
		workspace, err := scanWorkspace(rows)
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, workspace)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, workspace := range workspaces {
		if err := r.loadMembers(workspace); err != nil {
			return nil, err
		}
	}
	return workspaces, nil
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(workspace *domain.Workspace) (*domain.Workspace, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO workspaces (name, owner_id)
		 VALUES ($1, $2)
		 RETURNING `+workspaceColumns,
		workspace.Name, uuidToPg(workspace.OwnerID))
	return scanWorkspace(row)
}

// Update writes the workspace name. Ownership is immutable; membership is
// mutated through AddMember/RemoveMember.
func (r *WorkspaceRepository) Update(workspace *domain.Workspace) (*domain.Workspace, error) {
	row := r.pool.QueryRow(context.Background(),
		`UPDATE workspaces SET name = $2 WHERE id = $1
		 RETURNING `+workspaceColumns,
		uuidToPg(workspace.ID), workspace.Name)
	updated, err := scanWorkspace(row)
	if err != nil {
		return nil, err
	}
	updated.Members = workspace.Members
	return updated, nil
}

// Delete removes a workspace and its membership rows. Lists referencing the
// workspace are kept.
func (r *WorkspaceRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM workspace_members WHERE workspace_id = $1`, uuidToPg(id)); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM workspaces WHERE id = $1`, uuidToPg(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkspaceNotFound
	}
	return nil
}

// AddMember inserts a membership row. Duplicate inserts are absorbed; the
// duplicate-member check is the caller's read-modify-write concern.
func (r *WorkspaceRepository) AddMember(workspaceID, memberID uuid.UUID) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO workspace_members (workspace_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		uuidToPg(workspaceID), uuidToPg(memberID))
	return err
}

// RemoveMember deletes a membership row; absent members are a no-op.
func (r *WorkspaceRepository) RemoveMember(workspaceID, memberID uuid.UUID) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM workspace_members WHERE workspace_id = $1 AND user_id = $2`,
		uuidToPg(workspaceID), uuidToPg(memberID))
	return err
}

func (r *WorkspaceRepository) loadMembers(workspace *domain.Workspace) error {
	rows, err := r.pool.Query(context.Background(),
		`SELECT user_id FROM workspace_members WHERE workspace_id = $1`, uuidToPg(workspace.ID))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var memberID pgtype.UUID
		if err := rows.Scan(&memberID); err != nil {
			return err
		}
		workspace.Members = append(workspace.Members, pgToUUID(memberID))
	}
	return rows.Err()
}

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var (
		id        pgtype.UUID
		name      string
		ownerID   pgtype.UUID
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &ownerID, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return &domain.Workspace{
		ID:        pgToUUID(id),
		Name:      name,
		OwnerID:   pgToUUID(ownerID),
		CreatedAt: createdAt.Time,
	}, nil
}
