package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/licitapro/licita_api/internal/service"
	"github.com/licitapro/licita_api/internal/utils"
)

// StatsHandler serves the dashboard statistics endpoint.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /v1/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to compute statistics")
		return
	}

	utils.Success(c, 200, "Statistics retrieved", stats)
}
