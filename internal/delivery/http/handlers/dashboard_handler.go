package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/usecase"
)

type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	aggregator  usecase.ReferralAggregator
}

func NewDashboardHandler(dashboardUC usecase.DashboardUsecase, aggregator usecase.ReferralAggregator) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		aggregator:  aggregator,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	merchantID := c.Param("id")

	dashboard, err := h.dashboardUC.LoadDashboard(c.Request.Context(), merchantID)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "merchant not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) GetRecentReferrals(c *gin.Context) {
	merchantID := c.Param("id")

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 20 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 20"})
			return
		}
		limit = parsed
	}

	recent, err := h.aggregator.RecentActive(c.Request.Context(), merchantID, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load recent referrals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"referrals": recent})
}
