package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/commerce-system/internal/core/ports"
)

// ProductHandler serves the read-only catalog.
type ProductHandler struct {
	catalog ports.ProductCatalog
}

func NewProductHandler(catalog ports.ProductCatalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type productResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// List handles GET /api/products.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalog.All(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = productResponse{ID: p.ID, Name: p.Name, Price: p.Price.InexactFloat64()}
	}
	return c.JSON(http.StatusOK, out)
}
