package service

import (
	"github.com/rs/zerolog/log"

	"github.com/licitapro/licita_api/internal/finance"
	"github.com/licitapro/licita_api/internal/repository"
)

// StatsService computes the dashboard statistics. Every call recomputes
// from the current snapshot; nothing is cached.
type StatsService struct {
	tenderRepo  *repository.TenderRepository
	productRepo *repository.ProductRepository
}

// NewStatsService constructs a StatsService.
func NewStatsService(tenderRepo *repository.TenderRepository, productRepo *repository.ProductRepository) *StatsService {
	return &StatsService{tenderRepo: tenderRepo, productRepo: productRepo}
}

// GetStats loads all tenders with their orders plus the catalog size and
// aggregates them into the overview, the top margin ranking, and the
// most recent tenders.
func (s *StatsService) GetStats() (*finance.Stats, error) {
	tenders, err := s.tenderRepo.GetAllWithOrders()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load tenders for stats")
		return nil, err
	}

	totalProducts, err := s.productRepo.Count()
	if err != nil {
		log.Error().Err(err).Msg("Failed to count products for stats")
		return nil, err
	}

	return &finance.Stats{
		Overview:      finance.ComputeOverview(tenders, totalProducts),
		TenderRanking: finance.RankByMargin(tenders, finance.DefaultRankingSize),
		RecentTenders: finance.MostRecent(tenders, finance.DefaultRecentSize),
	}, nil
}
