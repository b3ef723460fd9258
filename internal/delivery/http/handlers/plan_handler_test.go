package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hocpay/rewards-service/internal/domain"
	plandto "github.com/hocpay/rewards-service/internal/usecase/dto/plan"
)

type stubPlanUsecase struct {
	lockStatus *plandto.LockStatusOutput
	plan       *domain.RewardPlan
	err        error
}

func (s *stubPlanUsecase) LockStatus(ctx context.Context, merchantID string) (*plandto.LockStatusOutput, error) {
	return s.lockStatus, s.err
}

func (s *stubPlanUsecase) ReplacePlan(ctx context.Context, input *plandto.ReplacePlanInput) (*domain.RewardPlan, error) {
	return s.plan, s.err
}

func planRouter(uc *stubPlanUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPlanHandler(uc)
	router.GET("/api/v1/merchants/:id/plan", h.GetPlan)
	router.PUT("/api/v1/merchants/:id/plan", h.ReplacePlan)
	return router
}

func TestReplacePlanEndpoint(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		body   string
		uc     *stubPlanUsecase
		status int
	}{
		{
			name:   "accepted",
			body:   `{"period":"weekly","tier":"gold"}`,
			uc:     &stubPlanUsecase{plan: &domain.RewardPlan{Period: domain.PeriodWeekly, Tier: domain.TierGold, SelectedAt: now}},
			status: http.StatusOK,
		},
		{
			name:   "missing fields",
			body:   `{"period":"weekly"}`,
			uc:     &stubPlanUsecase{},
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown tier",
			body:   `{"period":"weekly","tier":"platinum"}`,
			uc:     &stubPlanUsecase{err: domain.ErrUnknownTier},
			status: http.StatusBadRequest,
		},
		{
			name:   "locked",
			body:   `{"period":"monthly","tier":"gold"}`,
			uc:     &stubPlanUsecase{err: domain.ErrPlanLocked},
			status: http.StatusConflict,
		},
		{
			name:   "unknown merchant",
			body:   `{"period":"weekly","tier":"gold"}`,
			uc:     &stubPlanUsecase{err: domain.ErrMerchantNotFound},
			status: http.StatusNotFound,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/merchants/m1/plan", strings.NewReader(c.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			planRouter(c.uc).ServeHTTP(rec, req)
			if rec.Code != c.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, c.status, rec.Body.String())
			}
		})
	}
}

func TestGetPlanEndpoint(t *testing.T) {
	selected := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	uc := &stubPlanUsecase{lockStatus: &plandto.LockStatusOutput{
		Plan:        &domain.RewardPlan{Period: domain.PeriodWeekly, Tier: domain.TierBronze, SelectedAt: selected},
		LockedUntil: selected.Add(domain.PlanLockDays * 24 * time.Hour),
		CanChange:   false,
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/m1/plan", nil)
	rec := httptest.NewRecorder()
	planRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"period":"weekly"`, `"tier":"bronze"`, `"can_change":false`, `"locked_until"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
}

func TestGetPlanEndpointUnknownMerchant(t *testing.T) {
	uc := &stubPlanUsecase{err: domain.ErrMerchantNotFound}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/ghost/plan", nil)
	rec := httptest.NewRecorder()
	planRouter(uc).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
