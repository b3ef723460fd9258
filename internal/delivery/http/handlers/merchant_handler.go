package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/usecase"
	merchantdto "github.com/hocpay/rewards-service/internal/usecase/dto/merchant"
)

type MerchantHandler struct {
	merchantUC usecase.MerchantUsecase
}

func NewMerchantHandler(merchantUC usecase.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUC: merchantUC}
}

type completeOnboardingRequest struct {
	MerchantID  string `json:"merchant_id" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	BVN         string `json:"bvn"`
	GovIDPath   string `json:"gov_id_path"`
	UtilityPath string `json:"utility_path"`
	Period      string `json:"period" binding:"required"`
	Tier        string `json:"tier" binding:"required"`
}

func (h *MerchantHandler) CompleteOnboarding(c *gin.Context) {
	var req completeOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid onboarding payload"})
		return
	}

	merchant, err := h.merchantUC.CompleteOnboarding(c.Request.Context(), &merchantdto.CompleteOnboardingInput{
		MerchantID:  req.MerchantID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		BVN:         req.BVN,
		GovIDPath:   req.GovIDPath,
		UtilityPath: req.UtilityPath,
		Period:      domain.Period(req.Period),
		Tier:        domain.Tier(req.Tier),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownPeriod), errors.Is(err, domain.ErrUnknownTier):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrMerchantExists):
			c.JSON(http.StatusConflict, gin.H{"error": "merchant already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete onboarding"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"merchant_id": merchant.ID,
		"status":      string(merchant.Status),
	})
}

func (h *MerchantHandler) Activate(c *gin.Context) {
	merchantID := c.Param("id")

	merchant, err := h.merchantUC.Activate(c.Request.Context(), merchantID)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "merchant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to activate merchant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"merchant_id":   merchant.ID,
		"status":        string(merchant.Status),
		"referral_code": merchant.ReferralCode,
	})
}
