// AngelaMos | 2026
// payment.go

package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

type Payment struct {
	ID            string    `db:"id"             json:"id"`
	Email         string    `db:"email"          json:"email"`
	BiodataID     int       `db:"biodata_id"     json:"biodata_id"`
	Price         float64   `db:"price"          json:"price"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
}

type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0,lte=1000000"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest records a completed charge and opens a contact
// request for BiodataID in the same transaction.
type RecordPaymentRequest struct {
	Email         string  `json:"email"          validate:"required,email,max=255"`
	Name          string  `json:"name"           validate:"max=100"`
	BiodataID     int     `json:"biodata_id"     validate:"required,gt=0"`
	Price         float64 `json:"price"          validate:"required,gt=0,lte=1000000"`
	TransactionID string  `json:"transaction_id" validate:"required,max=255"`
}

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	List(ctx context.Context) ([]Payment, error)
	SumPrice(ctx context.Context) (float64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	stmt := `
		INSERT INTO payments (id, email, biodata_id, price, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &p.CreatedAt, stmt,
		p.ID, p.Email, p.BiodataID, p.Price, p.TransactionID)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Payment, error) {
	payments := []Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT id, email, biodata_id, price::float8 AS price, transaction_id, created_at
		FROM payments
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// SumPrice totals every payment. An empty table sums to 0.
func (r *repository) SumPrice(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(price), 0)::float8 FROM payments`)
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}
