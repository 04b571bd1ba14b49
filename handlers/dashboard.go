package handlers

import (
	"net/http"
	"time"

	"glamazon/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler wires the admin dashboard endpoints.
type DashboardHandler struct {
	Service dashboard.DashboardService
}

func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

// StatsHandler handles GET /api/dashboard/stats.
func (h *DashboardHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DataHashHandler handles GET /api/dashboard/data-hash.
func (h *DashboardHandler) DataHashHandler(c *gin.Context) {
	hash, err := h.Service.CurrentDataHash()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hash)
}

// RealTimeUpdatesHandler handles GET /api/dashboard/real-time-updates.
// Expects ?lastUpdate=RFC3339; a missing value means "everything is new".
func (h *DashboardHandler) RealTimeUpdatesHandler(c *gin.Context) {
	var lastUpdate time.Time
	if raw := c.Query("lastUpdate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lastUpdate must be RFC3339"})
			return
		}
		lastUpdate = parsed
	}

	check, err := h.Service.RealTimeUpdates(lastUpdate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}
