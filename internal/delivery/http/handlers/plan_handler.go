package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/usecase"
	plandto "github.com/hocpay/rewards-service/internal/usecase/dto/plan"
)

type PlanHandler struct {
	planUC usecase.PlanUsecase
}

func NewPlanHandler(planUC usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{planUC: planUC}
}

type planResponse struct {
	Period      string     `json:"period,omitempty"`
	Tier        string     `json:"tier,omitempty"`
	SelectedAt  *time.Time `json:"selected_at,omitempty"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
	CanChange   bool       `json:"can_change"`
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	merchantID := c.Param("id")

	status, err := h.planUC.LockStatus(c.Request.Context(), merchantID)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "merchant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plan"})
		return
	}

	resp := planResponse{CanChange: status.CanChange}
	if status.Plan != nil {
		resp.Period = string(status.Plan.Period)
		resp.Tier = string(status.Plan.Tier)
		selectedAt := status.Plan.SelectedAt
		lockedUntil := status.LockedUntil
		resp.SelectedAt = &selectedAt
		resp.LockedUntil = &lockedUntil
	}

	c.JSON(http.StatusOK, resp)
}

type replacePlanRequest struct {
	Period string `json:"period" binding:"required"`
	Tier   string `json:"tier" binding:"required"`
}

func (h *PlanHandler) ReplacePlan(c *gin.Context) {
	merchantID := c.Param("id")

	var req replacePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period and tier are required"})
		return
	}

	plan, err := h.planUC.ReplacePlan(c.Request.Context(), &plandto.ReplacePlanInput{
		MerchantID: merchantID,
		Period:     domain.Period(req.Period),
		Tier:       domain.Tier(req.Tier),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownPeriod), errors.Is(err, domain.ErrUnknownTier):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrMerchantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "merchant not found"})
		case errors.Is(err, domain.ErrPlanLocked):
			c.JSON(http.StatusConflict, gin.H{"error": "reward plan can only be changed 30 days after the last selection"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update plan"})
		}
		return
	}

	c.JSON(http.StatusOK, planResponse{
		Period:     string(plan.Period),
		Tier:       string(plan.Tier),
		SelectedAt: &plan.SelectedAt,
	})
}
