// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

const userColumns = `id, email, name, photo_url, role, status, created_at, updated_at`

var searchable = query.Columns{
	query.FieldName:   "name",
	query.FieldEmail:  "email",
	query.FieldStatus: "status",
}

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Find(ctx context.Context, spec query.Spec) ([]User, error)
	UpdateRole(ctx context.Context, id, role string) (core.UpdateResult, error)
	UpdateStatus(ctx context.Context, id, status string) (core.UpdateResult, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, name, photo_url, role, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Email,
		user.Name,
		user.PhotoURL,
		user.Role,
		user.Status,
	)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) Find(ctx context.Context, spec query.Spec) ([]User, error) {
	compiled, err := spec.SQL(searchable)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	order := ""
	if compiled.OrderBy == "" {
		order = " ORDER BY created_at DESC"
	}

	stmt := `SELECT ` + userColumns + ` FROM users` + compiled.Clause() + order

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, stmt, compiled.Args...); err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	return users, nil
}

// UpdateRole reports how many rows matched id and how many actually
// changed, so re-applying the same role is a matched no-op.
func (r *repository) UpdateRole(
	ctx context.Context,
	id, role string,
) (core.UpdateResult, error) {
	query := `
		WITH target AS (
			SELECT id, role FROM users WHERE id = $1
		), updated AS (
			UPDATE users u
			SET role = $2, updated_at = NOW()
			FROM target
			WHERE u.id = target.id AND target.role <> $2
			RETURNING u.id
		)
		SELECT (SELECT COUNT(*) FROM target) AS matched,
		       (SELECT COUNT(*) FROM updated) AS modified`

	var res core.UpdateResult
	if err := r.db.GetContext(ctx, &res, query, id, role); err != nil {
		return core.UpdateResult{}, fmt.Errorf("update user role: %w", err)
	}

	return res, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) (core.UpdateResult, error) {
	query := `
		WITH target AS (
			SELECT id, status FROM users WHERE id = $1
		), updated AS (
			UPDATE users u
			SET status = $2, updated_at = NOW()
			FROM target
			WHERE u.id = target.id AND target.status <> $2
			RETURNING u.id
		)
		SELECT (SELECT COUNT(*) FROM target) AS matched,
		       (SELECT COUNT(*) FROM updated) AS modified`

	var res core.UpdateResult
	if err := r.db.GetContext(ctx, &res, query, id, status); err != nil {
		return core.UpdateResult{}, fmt.Errorf("update user status: %w", err)
	}

	return res, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}
