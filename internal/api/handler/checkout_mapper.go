package handler

import (
	"github.com/lojinha/commerce-system/internal/core/domain"
	"github.com/lojinha/commerce-system/internal/core/ports"
)

// --- Request → Service input ---

func toCheckoutInput(req checkoutRequest, userID int) ports.CheckoutInput {
	items := make([]domain.CheckoutItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.CheckoutItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	input := ports.CheckoutInput{
		UserID:        userID,
		Items:         items,
		Freight:       req.Freight,
		PaymentMethod: req.PaymentMethod,
	}
	if req.CardData != nil {
		input.CardData = &domain.CardData{
			Number: req.CardData.Number,
			Holder: req.CardData.Holder,
			Expiry: req.CardData.Expiry,
			CVV:    req.CardData.CVV,
		}
	}
	return input
}

// --- Service result → HTTP response ---

func toCheckoutResponse(r *domain.CheckoutResult) checkoutResponse {
	items := make([]checkoutItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = checkoutItemResponse{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	return checkoutResponse{
		UserID:        r.UserID,
		Items:         items,
		Freight:       r.Freight.InexactFloat64(),
		PaymentMethod: r.PaymentMethod,
		Total:         r.Total.InexactFloat64(),
	}
}
