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

// MySQLUserRepository handles user persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate email yields ErrUserAlreadyExists.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `INSERT INTO users (id, email, password, role, name, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (r *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanMySQLUser(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	return user, nil
}

// FindByEmail retrieves a user by email, ignoring case.
func (r *MySQLUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER(?)`

	user, err := scanMySQLUser(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find user by email")
	}
	return user, nil
}

// List retrieves users ordered by email with pagination support.
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY email ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() {
		_ = rows.Close()
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanMySQLUser(rows)
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
func (r *MySQLUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
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
		var idBytes []byte
		if err := rows.Scan(&idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user id")
		}
		var id uuid.UUID
		if err := id.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal user id")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating user ids")
	}

	return ids, nil
}

// UpdateRole reassigns a user's role.
func (r *MySQLUserRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role authDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `UPDATE users SET role = ?, updated_at = CURRENT_TIMESTAMP(6) WHERE id = ?`

	return execAffectingOne(ctx, querier, query, "failed to update user role", string(role), id)
}

// UpdatePassword replaces a user's password hash.
func (r *MySQLUserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	querier := database.GetTx(ctx, r.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `UPDATE users SET password = ?, updated_at = CURRENT_TIMESTAMP(6) WHERE id = ?`

	return execAffectingOne(ctx, querier, query, "failed to update user password", passwordHash, id)
}

func scanMySQLUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var idBytes []byte
	var role string

	err := row.Scan(
		&idBytes,
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

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	user.Role = authDomain.Role(role)
	return &user, nil
}
