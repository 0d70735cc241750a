package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/commerce-system/internal/core/ports"
)

// HealthHandler handles the GET /health liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles the GET /health/ready readiness probe.
// The service is ready once the product catalog seed is loaded; there are no
// external dependencies to check.
type ReadinessHandler struct {
	catalog ports.ProductCatalog
}

func NewReadinessHandler(catalog ports.ProductCatalog) *ReadinessHandler {
	return &ReadinessHandler{catalog: catalog}
}

type readinessResponse struct {
	Status   string `json:"status"`
	Products int    `json:"products"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	products, err := h.catalog.All(c.Request().Context())
	if err != nil || len(products) == 0 {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{Status: "degraded"})
	}

	return c.JSON(http.StatusOK, readinessResponse{
		Status:   "ok",
		Products: len(products),
	})
}
