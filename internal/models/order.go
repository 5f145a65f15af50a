package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single product line item within a tender. Price is an
// optional recorded unit price kept for display; revenue and margin
// calculations always use the product's salePrice.
type Order struct {
	ID          string          `db:"id" json:"id"`
	TenderID    string          `db:"tender_id" json:"tenderId"`
	ProductID   string          `db:"product_id" json:"productId"`
	Quantity    int             `db:"quantity" json:"quantity"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Observation string          `db:"observation" json:"observation,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// OrderWithProduct is an order line joined with its product. The db tag
// prefixes the nested columns ("product.id", ...) for sqlx scanning.
type OrderWithProduct struct {
	Order
	Product Product `db:"product" json:"product"`
}

// OrderWithTender is an order line joined with its owning tender.
type OrderWithTender struct {
	Order
	Tender Tender `db:"tender" json:"tender"`
}
