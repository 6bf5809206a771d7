package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive-backend/internal/domain"
)

// uniqueViolation is the Postgres error code for unique index violations.
const uniqueViolation = "23505"

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password_hash, name, created_at`

// GetByID retrieves a user by their UUID
func (r *UserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, uuidToPg(id))
	return scanUser(row)
}

// GetByEmail retrieves a user by exact email match
func (r *UserRepository) GetByEmail(email string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// Create creates a new user. Email uniqueness is enforced by the unique
// index; a violation maps to domain.ErrEmailTaken.
func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		user.Email, user.PasswordHash, stringPtrToPgText(user.Name))

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id        pgtype.UUID
		email     string
		hash      string
		name      pgtype.Text
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &email, &hash, &name, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &domain.User{
		ID:           pgToUUID(id),
		Email:        email,
		PasswordHash: hash,
		Name:         pgTextToStringPtr(name),
		CreatedAt:    createdAt.Time,
	}, nil
}
