// AngelaMos | 2026
// repository.go

package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

const requestColumns = `id, biodata_id, requester_email, requester_name,
	name, mobile_number, contact_email, transaction_id, status,
	created_at, updated_at`

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	ListByRequester(ctx context.Context, email string) ([]Request, error)
	ListAll(ctx context.Context) ([]Request, error)
	Approve(ctx context.Context, id string) (core.UpdateResult, error)
	Delete(ctx context.Context, id string) (core.DeleteResult, error)
}

type repository struct {
	db core.DBTX
}

// NewRepository accepts a pool or a transaction.
func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	stmt := `
		INSERT INTO contact_requests (
			id, biodata_id, requester_email, requester_name, name,
			mobile_number, contact_email, transaction_id, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, req, stmt,
		req.ID, req.BiodataID, req.RequesterEmail, req.RequesterName,
		req.Name, req.MobileNumber, req.ContactEmail, req.TransactionID,
		req.Status,
	)
	if err != nil {
		return fmt.Errorf("create contact request: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.GetContext(ctx, &req,
		`SELECT `+requestColumns+` FROM contact_requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get contact request: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get contact request: %w", err)
	}
	return &req, nil
}

func (r *repository) ListByRequester(ctx context.Context, email string) ([]Request, error) {
	requests := []Request{}
	err := r.db.SelectContext(ctx, &requests,
		`SELECT `+requestColumns+` FROM contact_requests
		 WHERE requester_email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("list contact requests: %w", err)
	}
	return requests, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Request, error) {
	requests := []Request{}
	err := r.db.SelectContext(ctx, &requests,
		`SELECT `+requestColumns+` FROM contact_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact requests: %w", err)
	}
	return requests, nil
}

func (r *repository) Approve(ctx context.Context, id string) (core.UpdateResult, error) {
	stmt := `
		WITH target AS (
			SELECT id, status FROM contact_requests WHERE id = $1
		), updated AS (
			UPDATE contact_requests c
			SET status = $2, updated_at = NOW()
			FROM target
			WHERE c.id = target.id AND target.status <> $2
			RETURNING c.id
		)
		SELECT (SELECT COUNT(*) FROM target) AS matched,
		       (SELECT COUNT(*) FROM updated) AS modified`

	var res core.UpdateResult
	if err := r.db.GetContext(ctx, &res, stmt, id, StatusApproved); err != nil {
		return core.UpdateResult{}, fmt.Errorf("approve contact request: %w", err)
	}
	return res, nil
}

func (r *repository) Delete(ctx context.Context, id string) (core.DeleteResult, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_requests WHERE id = $1`, id)
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete contact request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete contact request: %w", err)
	}

	return core.DeleteResult{DeletedCount: rows}, nil
}
