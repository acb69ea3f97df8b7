package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fairprice/ppp-pricing/internal/core/domain/catalog"
	"github.com/fairprice/ppp-pricing/internal/core/ports"
)

// CatalogService fronts the host platform's product records. Canonical
// prices pass through untouched; adjustment happens in the handlers on
// the way out.
type CatalogService struct {
	repo   ports.ProductRepository
	logger *logrus.Logger
}

func NewCatalogService(repo ports.ProductRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *catalog.CreateProductRequest) (*catalog.Product, error) {
	if req.SKU == "" || req.Name == "" {
		return nil, fmt.Errorf("sku and name are required")
	}
	if req.RegularPrice < 0 || req.SalePrice < 0 {
		return nil, fmt.Errorf("prices must be non-negative")
	}
	if existing, err := s.repo.GetBySKU(ctx, req.SKU); err == nil && existing != nil {
		return nil, fmt.Errorf("product sku '%s' is already taken", req.SKU)
	}

	product := &catalog.Product{
		ID:           uuid.New(),
		SKU:          req.SKU,
		Name:         req.Name,
		RegularPrice: req.RegularPrice,
		SalePrice:    req.SalePrice,
		Currency:     req.Currency,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"sku": req.SKU}).WithError(err).Error("failed to create product in repo")
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"sku": product.SKU, "id": product.ID}).Info("product created")
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]*catalog.Product, error) {
	return s.repo.List(ctx, limit, offset)
}
