package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devicepro80/dhstore/internal/stores"
)

type AnalyticsHandler struct {
	Analytics stores.AnalyticsStore
}

func NewAnalyticsHandler(analytics stores.AnalyticsStore) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: analytics}
}

// Overview returns the 30-day sales summary and low-stock count,
// recomputed on every call.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.Analytics.Overview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}
