package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lojinha/commerce-system/internal/core/domain"
)

// ProductCatalog is the fixed, read-only product list. It is immutable after
// construction, so reads need no locking.
type ProductCatalog struct {
	products []domain.Product
}

// NewProductCatalog returns the catalog seeded with the demo products.
func NewProductCatalog() *ProductCatalog {
	return &ProductCatalog{products: []domain.Product{
		{ID: 1, Name: "Camiseta", Price: decimal.RequireFromString("49.90")},
		{ID: 2, Name: "Caneca", Price: decimal.RequireFromString("29.90")},
		{ID: 3, Name: "Caderno", Price: decimal.RequireFromString("19.50")},
		{ID: 4, Name: "Adesivo", Price: decimal.RequireFromString("4.99")},
	}}
}

func (c *ProductCatalog) FindByID(_ context.Context, id int) (*domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (c *ProductCatalog) All(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}
