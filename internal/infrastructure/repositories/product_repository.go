package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fairprice/ppp-pricing/internal/core/domain/catalog"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/db"
)

// ProductRepository persists canonical product records in Postgres.
type ProductRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewProductRepository(database *db.Database, logger *logrus.Logger) *ProductRepository {
	return &ProductRepository{db: database, logger: logger}
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	query := `
		INSERT INTO products (id, sku, name, regular_price, sale_price, currency, created_at, updated_at)
		VALUES (:id, :sku, :name, :regular_price, :sale_price, :currency, :created_at, :updated_at)`
	if _, err := r.db.DB.NamedExecContext(ctx, query, p); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"sku": p.SKU}).WithError(err).Error("insert product failed")
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var p catalog.Product
	err := r.db.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	var p catalog.Product
	err := r.db.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE sku = $1`, sku)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*catalog.Product, error) {
	products := []*catalog.Product{}
	err := r.db.DB.SelectContext(ctx, &products,
		`SELECT * FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
