package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lojinha/commerce-system/internal/core/domain"
	"github.com/lojinha/commerce-system/internal/core/ports"
)

// creditCardDiscount is the multiplier applied when paying by credit card.
var creditCardDiscount = decimal.RequireFromString("0.95")

// CheckoutService prices orders against the product catalog.
type CheckoutService struct {
	catalog ports.ProductCatalog
	logger  zerolog.Logger
}

func NewCheckoutService(catalog ports.ProductCatalog, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{catalog: catalog, logger: logger}
}

// CalculateTotal computes sum(quantity × price) + freight, multiplies by
// 0.95 when paymentMethod is exactly "credit_card", and rounds the result to
// 2 decimal places. Quantities are not checked: zero and negative values
// price accordingly. An item referencing an unknown product fails with
// domain.ErrProductNotFound.
func (s *CheckoutService) CalculateTotal(ctx context.Context, items []domain.CheckoutItem, freight float64, paymentMethod string) (decimal.Decimal, error) {
	total := decimal.NewFromFloat(freight)
	for _, item := range items {
		product, err := s.catalog.FindByID(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if paymentMethod == domain.PaymentCreditCard {
		total = total.Mul(creditCardDiscount)
	}

	return total.Round(2), nil
}

// Checkout validates payment requirements, prices the order and assembles
// the result. The total is always CalculateTotal of the same arguments.
func (s *CheckoutService) Checkout(ctx context.Context, input ports.CheckoutInput) (*domain.CheckoutResult, error) {
	if input.PaymentMethod == domain.PaymentCreditCard && input.CardData == nil {
		return nil, domain.ErrCardDataRequired
	}

	total, err := s.CalculateTotal(ctx, input.Items, input.Freight, input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("user_id", input.UserID).
		Str("payment_method", input.PaymentMethod).
		Str("total", total.String()).
		Msg("checkout priced")

	return &domain.CheckoutResult{
		UserID:        input.UserID,
		Items:         input.Items,
		Freight:       decimal.NewFromFloat(input.Freight),
		PaymentMethod: input.PaymentMethod,
		Total:         total,
	}, nil
}
