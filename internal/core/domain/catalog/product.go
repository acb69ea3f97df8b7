package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is a canonical store record. Prices here are what the merchant
// set; purchasing-power adjustment happens at read time and never writes
// back into this record.
type Product struct {
	ID           uuid.UUID `json:"id" db:"id"`
	SKU          string    `json:"sku" db:"sku"`
	Name         string    `json:"name" db:"name"`
	RegularPrice float64   `json:"regular_price" db:"regular_price"`
	// SalePrice <= 0 means no sale is configured.
	SalePrice float64   `json:"sale_price" db:"sale_price"`
	Currency  string    `json:"currency" db:"currency"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OnSale reports whether a sale price is configured below the regular price.
func (p *Product) OnSale() bool {
	return p.SalePrice > 0 && p.SalePrice < p.RegularPrice
}

type CreateProductRequest struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	RegularPrice float64 `json:"regular_price"`
	SalePrice    float64 `json:"sale_price"`
	Currency     string  `json:"currency"`
}
