package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item offered against tenders.
// Fields are tagged for both DB scanning and JSON serialization.
// Prices are decimals; a product must be sellable at a profit
// (salePrice > costPrice), enforced by validation on every write.
type Product struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	SKU         string          `db:"sku" json:"sku"`
	Description string          `db:"description" json:"description,omitempty"`
	SalePrice   decimal.Decimal `db:"sale_price" json:"salePrice"`
	CostPrice   decimal.Decimal `db:"cost_price" json:"costPrice"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// ProductWithOrders is a product detail view including the order lines
// that reference it and their owning tenders.
type ProductWithOrders struct {
	Product
	Orders []OrderWithTender `json:"orders"`
}
