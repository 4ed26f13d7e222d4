package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub_backend/internal/services"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{BaseHandler: base, statsService: statsService}
}

// GetHostStats godoc
// @Summary Dashboard counters for the authenticated host
// @Tags stats
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /stats [get]
func (h *StatsHandler) GetHostStats(c *gin.Context) {
	hostID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetHostStats(h.GetDB(c), hostID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Stats retrieved", "stats", stats)
}
