package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/licitapro/licita_api/internal/service"
)

// StatsWorker periodically recomputes the dashboard overview and logs it,
// giving operators a financial heartbeat without hitting the API.
type StatsWorker struct {
	statsService *service.StatsService
	interval     time.Duration
}

// NewStatsWorker constructs a StatsWorker.
func NewStatsWorker(statsService *service.StatsService, interval time.Duration) *StatsWorker {
	return &StatsWorker{
		statsService: statsService,
		interval:     interval,
	}
}

// Start begins the report loop and listens for context cancellation.
func (w *StatsWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting stats worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Stats worker stopped")
			return
		}
	}
}

func (w *StatsWorker) run() {
	stats, err := w.statsService.GetStats()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute stats report")
		return
	}

	o := stats.Overview
	log.Info().
		Int("tenders", o.TotalTenders).
		Int("products", o.TotalProducts).
		Str("revenue", o.TotalRevenue.String()).
		Str("cost", o.TotalCost.String()).
		Str("margin", o.TotalMargin.String()).
		Msg("Stats report")
}
