package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lojinha/commerce-system/internal/core/domain"
)

// CheckoutInput carries everything needed to price and assemble an order.
// UserID comes from the verified token, never from the request body.
type CheckoutInput struct {
	UserID        int
	Items         []domain.CheckoutItem
	Freight       float64
	PaymentMethod string
	CardData      *domain.CardData
}

// CheckoutService prices orders against the product catalog.
type CheckoutService interface {
	// CalculateTotal computes sum(quantity × price) + freight, applies the
	// credit-card discount and rounds to 2 decimal places.
	CalculateTotal(ctx context.Context, items []domain.CheckoutItem, freight float64, paymentMethod string) (decimal.Decimal, error)
	// Checkout validates payment requirements and assembles the result; its
	// total always equals CalculateTotal for the same arguments.
	Checkout(ctx context.Context, input CheckoutInput) (*domain.CheckoutResult, error)
}
