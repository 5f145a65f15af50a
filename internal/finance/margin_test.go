package finance

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/licitapro/licita_api/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func orderLine(salePrice, costPrice string, quantity int) models.OrderWithProduct {
	return models.OrderWithProduct{
		Order: models.Order{Quantity: quantity},
		Product: models.Product{
			SalePrice: dec(salePrice),
			CostPrice: dec(costPrice),
		},
	}
}

func TestLineMargin(t *testing.T) {
	got := LineMargin(dec("100"), dec("60"), 2)
	if !got.Equal(dec("80")) {
		t.Errorf("expected 80, got %s", got)
	}
}

func TestLineMargin_ZeroQuantity(t *testing.T) {
	got := LineMargin(dec("100"), dec("60"), 0)
	if !got.IsZero() {
		t.Errorf("expected 0, got %s", got)
	}
}

func TestLineMargin_NegativeQuantityNotRejected(t *testing.T) {
	// The calculator is total over its domain; rejecting bad quantities
	// is the validator's job.
	got := LineMargin(dec("100"), dec("60"), -1)
	if !got.Equal(dec("-40")) {
		t.Errorf("expected -40, got %s", got)
	}
}

func TestLineMargin_LossMakingPrices(t *testing.T) {
	got := LineMargin(dec("50"), dec("70"), 3)
	if !got.Equal(dec("-60")) {
		t.Errorf("expected -60, got %s", got)
	}
}

func TestLineRevenueAndCost(t *testing.T) {
	if got := LineRevenue(dec("5.90"), 400); !got.Equal(dec("2360")) {
		t.Errorf("expected revenue 2360, got %s", got)
	}
	if got := LineCost(dec("3.40"), 400); !got.Equal(dec("1360")) {
		t.Errorf("expected cost 1360, got %s", got)
	}
}

func TestTotalMargin_Empty(t *testing.T) {
	got := TotalMargin(nil)
	if !got.IsZero() {
		t.Errorf("expected 0 for empty input, got %s", got)
	}
}

func TestTotalMargin_OrderInvariant(t *testing.T) {
	orders := []models.OrderWithProduct{
		orderLine("100", "60", 2),
		orderLine("50", "40", 5),
		orderLine("42", "24.50", 25),
	}
	reversed := []models.OrderWithProduct{orders[2], orders[1], orders[0]}

	a := TotalMargin(orders)
	b := TotalMargin(reversed)
	if !a.Equal(b) {
		t.Errorf("total margin depends on input order: %s vs %s", a, b)
	}
}

func TestSummarizeTender(t *testing.T) {
	// Product A: sale 100 / cost 60, qty 2. Product B: sale 50 / cost 40, qty 5.
	tender := models.TenderWithOrders{
		Orders: []models.OrderWithProduct{
			orderLine("100", "60", 2),
			orderLine("50", "40", 5),
		},
	}

	s := SummarizeTender(tender)

	if !s.TotalRevenue.Equal(dec("450")) {
		t.Errorf("expected revenue 450, got %s", s.TotalRevenue)
	}
	if !s.TotalCost.Equal(dec("320")) {
		t.Errorf("expected cost 320, got %s", s.TotalCost)
	}
	if !s.TotalMargin.Equal(dec("130")) {
		t.Errorf("expected margin 130, got %s", s.TotalMargin)
	}
	if s.ProductCount != 2 {
		t.Errorf("expected productCount 2, got %d", s.ProductCount)
	}
}

func TestSummarizeTender_NoOrders(t *testing.T) {
	s := SummarizeTender(models.TenderWithOrders{})

	if !s.TotalRevenue.IsZero() || !s.TotalCost.IsZero() || !s.TotalMargin.IsZero() {
		t.Errorf("expected all-zero summary, got %+v", s)
	}
	if s.ProductCount != 0 {
		t.Errorf("expected productCount 0, got %d", s.ProductCount)
	}
}

func TestSummarizeTender_IgnoresOrderPrice(t *testing.T) {
	// Order.Price is display-only; the summary must use the product's
	// salePrice.
	line := orderLine("100", "60", 1)
	line.Price = dec("999")

	s := SummarizeTender(models.TenderWithOrders{Orders: []models.OrderWithProduct{line}})
	if !s.TotalRevenue.Equal(dec("100")) {
		t.Errorf("expected revenue 100 from product salePrice, got %s", s.TotalRevenue)
	}
}
