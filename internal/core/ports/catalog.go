package ports

import (
	"context"

	"github.com/fairprice/ppp-pricing/internal/core/domain/catalog"
	"github.com/google/uuid"
)

// ProductRepository reads and writes canonical product records. The
// adjustment pipeline only ever reads from it.
type ProductRepository interface {
	Create(ctx context.Context, p *catalog.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	GetBySKU(ctx context.Context, sku string) (*catalog.Product, error)
	List(ctx context.Context, limit, offset int) ([]*catalog.Product, error)
}

// CatalogService exposes product reads with purchasing-power adjusted
// prices attached.
type CatalogService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	CreateProduct(ctx context.Context, req *catalog.CreateProductRequest) (*catalog.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]*catalog.Product, error)
}
