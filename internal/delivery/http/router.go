package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hocpay/rewards-service/internal/delivery/http/handlers"
)

func NewRouter(
	merchantHandler *handlers.MerchantHandler,
	dashboardHandler *handlers.DashboardHandler,
	planHandler *handlers.PlanHandler,
) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/merchants", merchantHandler.CompleteOnboarding)
		v1.POST("/merchants/:id/activate", merchantHandler.Activate)
		v1.GET("/merchants/:id/dashboard", dashboardHandler.GetDashboard)
		v1.GET("/merchants/:id/referrals/recent", dashboardHandler.GetRecentReferrals)
		v1.GET("/merchants/:id/plan", planHandler.GetPlan)
		v1.PUT("/merchants/:id/plan", planHandler.ReplacePlan)
	}

	return router
}
