// AngelaMos | 2026
// gateway.go

package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

type ChargeIntent struct {
	ID           string
	ClientSecret string
}

// Gateway creates a charge intent with the payment processor. Calls are
// not retried and carry no idempotency key.
type Gateway interface {
	CreateChargeIntent(
		ctx context.Context,
		amountMinor int64,
		currency string,
	) (*ChargeIntent, error)
}

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateChargeIntent(
	ctx context.Context,
	amountMinor int64,
	currency string,
) (*ChargeIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, fmt.Errorf(
				"create payment intent: %s (%s): %w",
				stripeErr.Code,
				stripeErr.Type,
				core.ErrUpstream,
			)
		}
		return nil, fmt.Errorf("create payment intent: %w: %w", core.ErrUpstream, err)
	}

	return &ChargeIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

var _ Gateway = (*StripeGateway)(nil)
