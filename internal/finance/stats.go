package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/licitapro/licita_api/internal/models"
)

// Default list sizes for the stats endpoint.
const (
	DefaultRankingSize = 10
	DefaultRecentSize  = 5
)

// Overview holds the totals aggregated across all tenders. TotalProducts
// is the catalog size supplied by the caller, not derived from orders.
type Overview struct {
	TotalTenders           int             `json:"totalTenders"`
	TotalProducts          int             `json:"totalProducts"`
	TotalRevenue           decimal.Decimal `json:"totalRevenue"`
	TotalCost              decimal.Decimal `json:"totalCost"`
	TotalMargin            decimal.Decimal `json:"totalMargin"`
	AverageMarginPerTender decimal.Decimal `json:"averageMarginPerTender"`
}

// TenderStats is one ranking entry: a tender identified by client and
// award date with its computed financials.
type TenderStats struct {
	ID           string          `json:"id"`
	Client       string          `json:"client"`
	AwardDate    time.Time       `json:"awardDate"`
	Revenue      decimal.Decimal `json:"revenue"`
	Cost         decimal.Decimal `json:"cost"`
	Margin       decimal.Decimal `json:"margin"`
	ProductCount int             `json:"productCount"`
}

// RecentTender is one entry of the most-recent list.
type RecentTender struct {
	ID           string    `json:"id"`
	Client       string    `json:"client"`
	AwardDate    time.Time `json:"awardDate"`
	ProductCount int       `json:"productCount"`
}

// Stats is the full payload of the stats endpoint.
type Stats struct {
	Overview      Overview       `json:"overview"`
	TenderRanking []TenderStats  `json:"tenderRanking"`
	RecentTenders []RecentTender `json:"recentTenders"`
}

// ComputeOverview aggregates revenue, cost, and margin across all tenders.
// Stored prices are taken as-is: a product priced below cost after the fact
// shows up as a negative contribution rather than an error.
func ComputeOverview(tenders []models.TenderWithOrders, totalProducts int) Overview {
	totalRevenue := decimal.Zero
	totalCost := decimal.Zero

	for _, t := range tenders {
		s := SummarizeTender(t)
		totalRevenue = totalRevenue.Add(s.TotalRevenue)
		totalCost = totalCost.Add(s.TotalCost)
	}

	totalMargin := totalRevenue.Sub(totalCost)

	// Guard against division by zero when no tenders exist.
	average := decimal.Zero
	if len(tenders) > 0 {
		average = totalMargin.Div(decimal.NewFromInt(int64(len(tenders))))
	}

	return Overview{
		TotalTenders:           len(tenders),
		TotalProducts:          totalProducts,
		TotalRevenue:           totalRevenue,
		TotalCost:              totalCost,
		TotalMargin:            totalMargin,
		AverageMarginPerTender: average,
	}
}

// RankByMargin returns up to topN tender summaries ordered by computed
// margin, highest first. The sort is stable so ties keep input order.
func RankByMargin(tenders []models.TenderWithOrders, topN int) []TenderStats {
	ranked := make([]TenderStats, 0, len(tenders))
	for _, t := range tenders {
		s := SummarizeTender(t)
		ranked = append(ranked, TenderStats{
			ID:           t.ID,
			Client:       t.Client,
			AwardDate:    t.AwardDate,
			Revenue:      s.TotalRevenue,
			Cost:         s.TotalCost,
			Margin:       s.TotalMargin,
			ProductCount: s.ProductCount,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Margin.GreaterThan(ranked[j].Margin)
	})

	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// MostRecent returns up to topN tenders ordered by award date, latest
// first. The sort is stable so ties keep input order.
func MostRecent(tenders []models.TenderWithOrders, topN int) []RecentTender {
	sorted := make([]models.TenderWithOrders, len(tenders))
	copy(sorted, tenders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AwardDate.After(sorted[j].AwardDate)
	})

	if topN >= 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}

	recent := make([]RecentTender, 0, len(sorted))
	for _, t := range sorted {
		recent = append(recent, RecentTender{
			ID:           t.ID,
			Client:       t.Client,
			AwardDate:    t.AwardDate,
			ProductCount: len(t.Orders),
		})
	}
	return recent
}
