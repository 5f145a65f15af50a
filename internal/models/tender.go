package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tender represents an awarded public-procurement contract (licitación).
// Margin is a stored target ratio in [0,1]; it is independent of the
// margin computed from the tender's orders and is never reconciled with it.
type Tender struct {
	ID              string          `db:"id" json:"id"`
	Client          string          `db:"client" json:"client"`
	AwardDate       time.Time       `db:"award_date" json:"awardDate"`
	DeliveryDate    *time.Time      `db:"delivery_date" json:"deliveryDate,omitempty"`
	DeliveryAddress string          `db:"delivery_address" json:"deliveryAddress,omitempty"`
	ContactPhone    string          `db:"contact_phone" json:"contactPhone,omitempty"`
	ContactEmail    string          `db:"contact_email" json:"contactEmail,omitempty"`
	Margin          decimal.Decimal `db:"margin" json:"margin"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updatedAt"`
}

// TenderWithOrders is a tender together with its order lines and their
// products, as loaded for detail views and stats aggregation.
type TenderWithOrders struct {
	Tender
	Orders []OrderWithProduct `json:"orders"`
}

// TenderSummary holds the derived financials for a single tender.
type TenderSummary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalMargin  decimal.Decimal `json:"totalMargin"`
	ProductCount int             `json:"productCount"`
}
