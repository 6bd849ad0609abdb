// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/carterperez-dev/matrimony-backend/internal/contact"
	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/member"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

type TxRunner interface {
	InTx(ctx context.Context, fn func(tx core.DBTX) error) error
}

type MemberFinder interface {
	FindByBiodataID(ctx context.Context, id int) (*member.Member, error)
}

// Stores are the repositories written together when a payment lands.
type Stores struct {
	Payments Repository
	Contacts contact.Repository
}

func BindStores(db core.DBTX) Stores {
	return Stores{
		Payments: NewRepository(db),
		Contacts: contact.NewRepository(db),
	}
}

type ServiceConfig struct {
	Tx       TxRunner
	Payments Repository
	Members  MemberFinder
	Gateway  Gateway
	Currency string
	Bind     func(core.DBTX) Stores
	Logger   *slog.Logger
}

type Service struct {
	tx       TxRunner
	payments Repository
	members  MemberFinder
	gateway  Gateway
	currency string
	bind     func(core.DBTX) Stores
	logger   *slog.Logger
}

func NewService(cfg ServiceConfig) *Service {
	if cfg.Bind == nil {
		cfg.Bind = BindStores
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Service{
		tx:       cfg.Tx,
		payments: cfg.Payments,
		members:  cfg.Members,
		gateway:  cfg.Gateway,
		currency: cfg.Currency,
		bind:     cfg.Bind,
		logger:   cfg.Logger,
	}
}

// MinorUnits converts a price to cents, rounding half away from zero.
func MinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, core.InvalidInputError("price must be a positive amount")
	}
	return int64(math.Round(price * 100)), nil
}

func (s *Service) CreateIntent(ctx context.Context, price float64) (*ChargeIntent, error) {
	amount, err := MinorUnits(price)
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateChargeIntent(ctx, amount, s.currency)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("payment intent created",
		"intent_id", intent.ID,
		"amount", amount,
		"currency", s.currency,
	)
	return intent, nil
}

// Record stores the payment and the contact request it pays for. Both
// rows are written or neither is.
func (s *Service) Record(
	ctx context.Context,
	req RecordPaymentRequest,
) (string, error) {
	if _, err := MinorUnits(req.Price); err != nil {
		return "", err
	}

	target, err := s.members.FindByBiodataID(ctx, req.BiodataID)
	if errors.Is(err, core.ErrNotFound) {
		return "", core.NotFoundError("biodata")
	}
	if err != nil {
		return "", err
	}

	email := query.NormalizeEmail(req.Email)
	p := &Payment{
		ID:            uuid.New().String(),
		Email:         email,
		BiodataID:     req.BiodataID,
		Price:         req.Price,
		TransactionID: req.TransactionID,
	}

	err = s.tx.InTx(ctx, func(tx core.DBTX) error {
		stores := s.bind(tx)

		if err := stores.Payments.Create(ctx, p); err != nil {
			return err
		}

		return stores.Contacts.Create(ctx, &contact.Request{
			ID:             uuid.New().String(),
			BiodataID:      target.BiodataID,
			RequesterEmail: email,
			RequesterName:  req.Name,
			Name:           target.Name,
			MobileNumber:   target.MobileNumber,
			ContactEmail:   target.Email,
			TransactionID:  req.TransactionID,
			Status:         contact.StatusRequested,
		})
	})
	if err != nil {
		return "", fmt.Errorf("record payment: %w", err)
	}

	s.logger.Info("payment recorded",
		"payment_id", p.ID,
		"email", email,
		"biodata_id", req.BiodataID,
	)
	return p.ID, nil
}

func (s *Service) List(ctx context.Context) ([]Payment, error) {
	return s.payments.List(ctx)
}

func (s *Service) SumPrice(ctx context.Context) (float64, error) {
	return s.payments.SumPrice(ctx)
}
