package ports

import (
	"context"

	"github.com/lojinha/commerce-system/internal/core/domain"
)

// ProductCatalog exposes the fixed product list.
type ProductCatalog interface {
	// FindByID returns domain.ErrProductNotFound for unknown IDs.
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	All(ctx context.Context) ([]domain.Product, error)
}
