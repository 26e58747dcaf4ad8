package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/dberrors"
)

const userColumns = `id, name, email, password, role, created_at, updated_at, last_login_at`

// UserRepository handles user database operations
type UserRepository struct {
	pgBase
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(base pgBase) *UserRepository {
	return &UserRepository{pgBase: base}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a user. The unique index on email is authoritative; a
// violation is reported as ErrEmailAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		user.Name, user.Email, user.Password, user.Role).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintUserEmail) {
			return apperrors.ErrEmailAlreadyExists
		}
		return storeErr("error creating user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storeErr("error loading user", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storeErr("error loading user", err)
	}
	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, storeErr("error checking email", err)
	}
	return exists, nil
}

// List returns one page of users, newest first, plus the total match count.
func (r *UserRepository) List(ctx context.Context, filter UserFilter) ([]*models.User, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var role *string
	if filter.Role != nil {
		s := string(*filter.Role)
		role = &s
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM users WHERE ($1::text IS NULL OR role = $1)`, role).Scan(&total); err != nil {
		return nil, 0, storeErr("error counting users", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE ($1::text IS NULL OR role = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, role, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, storeErr("error listing users", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, storeErr("error scanning user", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("error listing users", err)
	}
	return users, total, nil
}

// UpdateName changes the display name of a user
func (r *UserRepository) UpdateName(ctx context.Context, id int64, name string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `UPDATE users SET name = $1, updated_at = NOW() WHERE id = $2`, name, id)
	if err != nil {
		return storeErr("error updating user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = $1`, id); err != nil {
		return storeErr(fmt.Sprintf("failed to update last login time for user %d", id), err)
	}
	return nil
}

// Delete removes a user. Listings, applications and profile go with it
// through ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return storeErr("error deleting user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
