package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	impl "github.com/fairprice/ppp-pricing/internal/application/services"
	"github.com/fairprice/ppp-pricing/internal/core/domain/catalog"
)

type productRepoMock struct {
	createFn   func(ctx context.Context, p *catalog.Product) error
	getBySKUFn func(ctx context.Context, sku string) (*catalog.Product, error)
}

func (m *productRepoMock) Create(ctx context.Context, p *catalog.Product) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}
func (m *productRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return nil, errors.New("not found")
}
func (m *productRepoMock) GetBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	if m.getBySKUFn != nil {
		return m.getBySKUFn(ctx, sku)
	}
	return nil, errors.New("not found")
}
func (m *productRepoMock) List(ctx context.Context, limit, offset int) ([]*catalog.Product, error) {
	return nil, nil
}

func TestCreateProduct_SKUTaken(t *testing.T) {
	repo := &productRepoMock{getBySKUFn: func(ctx context.Context, sku string) (*catalog.Product, error) {
		return &catalog.Product{}, nil
	}}
	svc := impl.NewCatalogService(repo, nil)
	_, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{SKU: "sku-1", Name: "n", RegularPrice: 10})
	if err == nil {
		t.Fatalf("expected sku taken error")
	}
}

func TestCreateProduct_RejectsNegativePrices(t *testing.T) {
	svc := impl.NewCatalogService(&productRepoMock{}, nil)
	_, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{SKU: "sku-1", Name: "n", RegularPrice: -5})
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestCreateProduct_PersistsCanonicalPrices(t *testing.T) {
	var stored *catalog.Product
	repo := &productRepoMock{createFn: func(ctx context.Context, p *catalog.Product) error {
		stored = p
		return nil
	}}
	svc := impl.NewCatalogService(repo, nil)
	p, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{SKU: "sku-1", Name: "Widget", RegularPrice: 100, SalePrice: 80, Currency: "USD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || stored.RegularPrice != 100 || stored.SalePrice != 80 {
		t.Fatalf("canonical prices must persist unmodified, got %+v", stored)
	}
	if !p.OnSale() {
		t.Fatalf("expected product on sale")
	}
}
