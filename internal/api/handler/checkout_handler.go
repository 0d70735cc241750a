package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/commerce-system/internal/api/metrics"
	"github.com/lojinha/commerce-system/internal/core/domain"
	"github.com/lojinha/commerce-system/internal/core/ports"
)

// CheckoutHandler handles order pricing requests.
type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Checkout handles POST /api/checkout. The user identity comes from the
// Bearer token, never from the request body.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		metrics.CheckoutErrorsTotal.WithLabelValues(metrics.TransportREST, "unauthorized").Inc()
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "requisição inválida")
	}

	result, err := h.service.Checkout(c.Request().Context(), toCheckoutInput(req, userID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			metrics.CheckoutErrorsTotal.WithLabelValues(metrics.TransportREST, "product_not_found").Inc()
		case errors.Is(err, domain.ErrCardDataRequired):
			metrics.CheckoutErrorsTotal.WithLabelValues(metrics.TransportREST, "card_data_required").Inc()
		}
		return err
	}

	metrics.CheckoutsTotal.WithLabelValues(metrics.TransportREST, result.PaymentMethod).Inc()
	metrics.CheckoutAmountBRL.WithLabelValues(result.PaymentMethod).Observe(result.Total.InexactFloat64())

	return c.JSON(http.StatusOK, toCheckoutResponse(result))
}
