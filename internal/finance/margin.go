// Package finance holds the revenue/cost/margin arithmetic and the stats
// aggregation built on top of it. All functions are pure and operate on
// read-only snapshots; prices are decimals throughout, never floats.
//
// Calculations always use the product's salePrice and costPrice. The
// Order.Price field is a recorded figure kept for display and plays no
// part in any total.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/licitapro/licita_api/internal/models"
)

// LineRevenue returns salePrice * quantity for a single order line.
func LineRevenue(salePrice decimal.Decimal, quantity int) decimal.Decimal {
	return salePrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// LineCost returns costPrice * quantity for a single order line.
func LineCost(costPrice decimal.Decimal, quantity int) decimal.Decimal {
	return costPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// LineMargin returns (salePrice - costPrice) * quantity. No validation is
// performed here: a zero or negative quantity simply yields a zero or
// negative margin, and rejecting invalid quantities is the caller's job.
func LineMargin(salePrice, costPrice decimal.Decimal, quantity int) decimal.Decimal {
	return salePrice.Sub(costPrice).Mul(decimal.NewFromInt(int64(quantity)))
}

// TotalMargin sums LineMargin over all order lines. Empty input yields 0.
func TotalMargin(orders []models.OrderWithProduct) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(LineMargin(o.Product.SalePrice, o.Product.CostPrice, o.Quantity))
	}
	return total
}

// SummarizeTender computes the derived financials for a single tender.
// A tender with no orders yields an all-zero summary.
func SummarizeTender(t models.TenderWithOrders) models.TenderSummary {
	revenue := decimal.Zero
	cost := decimal.Zero
	for _, o := range t.Orders {
		revenue = revenue.Add(LineRevenue(o.Product.SalePrice, o.Quantity))
		cost = cost.Add(LineCost(o.Product.CostPrice, o.Quantity))
	}

	return models.TenderSummary{
		TotalRevenue: revenue,
		TotalCost:    cost,
		TotalMargin:  revenue.Sub(cost),
		ProductCount: len(t.Orders),
	}
}
