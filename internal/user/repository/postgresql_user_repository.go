// Package repository provides the credential store implementations.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/user/domain"
)

const userColumns = `id, email, password, role, name, created_at, updated_at`

// PostgreSQLUserRepository handles user persistence for PostgreSQL
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate email yields ErrUserAlreadyExists.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, email, password, role, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Password,
		string(user.Role),
		user.Name,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by ID
func (r *PostgreSQLUserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanPostgreSQLUser(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	return user, nil
}

// FindByEmail retrieves a user by email, ignoring case.
func (r *PostgreSQLUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	user, err := scanPostgreSQLUser(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find user by email")
	}
	return user, nil
}

// List retrieves users ordered by email with pagination support.
func (r *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY email ASC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() {
		_ = rows.Close()
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanPostgreSQLUser(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user row")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating user rows")
	}

	return users, nil
}

// ListIDs returns every user id, used for broadcast notifications.
func (r *PostgreSQLUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list user ids")
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user id")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating user ids")
	}

	return ids, nil
}

// UpdateRole reassigns a user's role.
func (r *PostgreSQLUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role authDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`

	return execAffectingOne(ctx, querier, query, "failed to update user role", string(role), id)
}

// UpdatePassword replaces a user's password hash.
func (r *PostgreSQLUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`

	return execAffectingOne(ctx, querier, query, "failed to update user password", passwordHash, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgreSQLUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var role string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&role,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = authDomain.Role(role)
	return &user, nil
}

func execAffectingOne(
	ctx context.Context,
	querier database.Querier,
	query, failure string,
	args ...any,
) error {
	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, failure)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
