package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/licitapro/licita_api/internal/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// tenderWithMargin builds a one-line tender whose computed margin equals
// the given amount (sale = margin + 1, cost = 1, qty = 1).
func tenderWithMargin(id string, margin int64) models.TenderWithOrders {
	return models.TenderWithOrders{
		Tender: models.Tender{ID: id, Client: "client-" + id},
		Orders: []models.OrderWithProduct{
			{
				Order: models.Order{Quantity: 1},
				Product: models.Product{
					SalePrice: decimal.NewFromInt(margin + 1),
					CostPrice: dec("1"),
				},
			},
		},
	}
}

func TestComputeOverview_Empty(t *testing.T) {
	o := ComputeOverview(nil, 0)

	if o.TotalTenders != 0 {
		t.Errorf("expected 0 tenders, got %d", o.TotalTenders)
	}
	if !o.TotalRevenue.IsZero() {
		t.Errorf("expected 0 revenue, got %s", o.TotalRevenue)
	}
	if !o.AverageMarginPerTender.IsZero() {
		t.Errorf("expected 0 average margin, got %s", o.AverageMarginPerTender)
	}
}

func TestComputeOverview(t *testing.T) {
	tenders := []models.TenderWithOrders{
		{
			Orders: []models.OrderWithProduct{
				orderLine("100", "60", 2),
				orderLine("50", "40", 5),
			},
		},
		{
			Orders: []models.OrderWithProduct{
				orderLine("100", "60", 1),
			},
		},
	}

	o := ComputeOverview(tenders, 7)

	if o.TotalTenders != 2 {
		t.Errorf("expected 2 tenders, got %d", o.TotalTenders)
	}
	if o.TotalProducts != 7 {
		t.Errorf("expected 7 products, got %d", o.TotalProducts)
	}
	if !o.TotalRevenue.Equal(dec("550")) {
		t.Errorf("expected revenue 550, got %s", o.TotalRevenue)
	}
	if !o.TotalCost.Equal(dec("380")) {
		t.Errorf("expected cost 380, got %s", o.TotalCost)
	}
	if !o.TotalMargin.Equal(dec("170")) {
		t.Errorf("expected margin 170, got %s", o.TotalMargin)
	}
	if !o.AverageMarginPerTender.Equal(dec("85")) {
		t.Errorf("expected average margin 85, got %s", o.AverageMarginPerTender)
	}
}

func TestRankByMargin(t *testing.T) {
	tenders := []models.TenderWithOrders{
		tenderWithMargin("a", 10),
		tenderWithMargin("b", 30),
		tenderWithMargin("c", 20),
	}

	ranked := RankByMargin(tenders, 2)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranked))
	}
	if !ranked[0].Margin.Equal(dec("30")) {
		t.Errorf("expected first margin 30, got %s", ranked[0].Margin)
	}
	if !ranked[1].Margin.Equal(dec("20")) {
		t.Errorf("expected second margin 20, got %s", ranked[1].Margin)
	}
}

func TestRankByMargin_StableTies(t *testing.T) {
	tenders := []models.TenderWithOrders{
		tenderWithMargin("first", 10),
		tenderWithMargin("second", 10),
		tenderWithMargin("third", 10),
	}

	ranked := RankByMargin(tenders, 3)

	if ranked[0].ID != "first" || ranked[1].ID != "second" || ranked[2].ID != "third" {
		t.Errorf("tie order not preserved: %s, %s, %s", ranked[0].ID, ranked[1].ID, ranked[2].ID)
	}
}

func TestRankByMargin_ZeroOrderTenderEligible(t *testing.T) {
	tenders := []models.TenderWithOrders{
		{Tender: models.Tender{ID: "empty"}},
	}

	ranked := RankByMargin(tenders, 10)

	if len(ranked) != 1 {
		t.Fatalf("expected the zero-order tender in the ranking, got %d entries", len(ranked))
	}
	if !ranked[0].Margin.IsZero() || ranked[0].ProductCount != 0 {
		t.Errorf("expected zero margin and productCount, got %+v", ranked[0])
	}
}

func TestMostRecent(t *testing.T) {
	tenders := []models.TenderWithOrders{
		{Tender: models.Tender{ID: "a", AwardDate: date("2023-01-01")}},
		{Tender: models.Tender{ID: "b", AwardDate: date("2024-06-01")}},
		{Tender: models.Tender{ID: "c", AwardDate: date("2023-06-01")}},
	}

	recent := MostRecent(tenders, 2)

	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].ID != "b" {
		t.Errorf("expected most recent tender b, got %s", recent[0].ID)
	}
	if recent[1].ID != "c" {
		t.Errorf("expected second tender c, got %s", recent[1].ID)
	}
}

func TestMostRecent_DoesNotMutateInput(t *testing.T) {
	tenders := []models.TenderWithOrders{
		{Tender: models.Tender{ID: "a", AwardDate: date("2023-01-01")}},
		{Tender: models.Tender{ID: "b", AwardDate: date("2024-06-01")}},
	}

	MostRecent(tenders, 1)

	if tenders[0].ID != "a" || tenders[1].ID != "b" {
		t.Error("input slice was reordered")
	}
}

func TestMostRecent_TopNLargerThanInput(t *testing.T) {
	tenders := []models.TenderWithOrders{
		{Tender: models.Tender{ID: "a", AwardDate: date("2023-01-01")}},
	}

	recent := MostRecent(tenders, 5)
	if len(recent) != 1 {
		t.Errorf("expected 1 entry, got %d", len(recent))
	}
}
