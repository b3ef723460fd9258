package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hocpay/rewards-service/internal/domain"
	dashboarddto "github.com/hocpay/rewards-service/internal/usecase/dto/dashboard"
	referraldto "github.com/hocpay/rewards-service/internal/usecase/dto/referral"
)

type stubDashboardUsecase struct {
	out *dashboarddto.DashboardOutput
	err error
}

func (s *stubDashboardUsecase) LoadDashboard(ctx context.Context, merchantID string) (*dashboarddto.DashboardOutput, error) {
	return s.out, s.err
}

type stubAggregator struct {
	recent    []referraldto.RecentReferralOutput
	recentErr error
	gotLimit  int
}

func (s *stubAggregator) CountAll(ctx context.Context, merchantID string, filters domain.ReferralFilters) int64 {
	return 0
}

func (s *stubAggregator) CountActive(ctx context.Context, merchantID string, filters domain.ReferralFilters) int64 {
	return 0
}

func (s *stubAggregator) SumActiveCashback(ctx context.Context, merchantID string, filters domain.ReferralFilters) float64 {
	return 0
}

func (s *stubAggregator) RecentActive(ctx context.Context, merchantID string, limit int) ([]referraldto.RecentReferralOutput, error) {
	s.gotLimit = limit
	return s.recent, s.recentErr
}

func dashboardRouter(uc *stubDashboardUsecase, agg *stubAggregator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewDashboardHandler(uc, agg)
	router.GET("/api/v1/merchants/:id/dashboard", h.GetDashboard)
	router.GET("/api/v1/merchants/:id/referrals/recent", h.GetRecentReferrals)
	return router
}

func TestGetDashboardEndpoint(t *testing.T) {
	uc := &stubDashboardUsecase{out: &dashboarddto.DashboardOutput{
		MerchantID: "m1",
		FullName:   "Ngozi Stores",
		ShareLink:  "https://portal.hocpay.com/r/XK42PQ9M",
		Goal:       dashboarddto.GoalOutput{Target: 10, Progress: 4, Percentage: 40, BarWidth: 40, PeriodLabel: "Week", Visible: true},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/m1/dashboard", nil)
	rec := httptest.NewRecorder()
	dashboardRouter(uc, &stubAggregator{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"share_link"`, `"period_label":"Week"`, `"visible":true`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
}

func TestGetDashboardEndpointErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/ghost/dashboard", nil)
	rec := httptest.NewRecorder()
	dashboardRouter(&stubDashboardUsecase{err: domain.ErrMerchantNotFound}, &stubAggregator{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown merchant: status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	dashboardRouter(&stubDashboardUsecase{err: errors.New("store down")}, &stubAggregator{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("store failure: status = %d, want 502", rec.Code)
	}
}

func TestGetRecentReferralsEndpoint(t *testing.T) {
	agg := &stubAggregator{recent: []referraldto.RecentReferralOutput{
		{ID: "r1", Name: "Ada", JoinedAt: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), Status: "Active"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/m1/referrals/recent?limit=10", nil)
	rec := httptest.NewRecorder()
	dashboardRouter(&stubDashboardUsecase{}, agg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if agg.gotLimit != 10 {
		t.Errorf("limit = %d, want 10", agg.gotLimit)
	}
}

func TestGetRecentReferralsLimitValidation(t *testing.T) {
	for _, raw := range []string{"0", "21", "-3", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/m1/referrals/recent?limit="+raw, nil)
		rec := httptest.NewRecorder()
		dashboardRouter(&stubDashboardUsecase{}, &stubAggregator{}).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want 400", raw, rec.Code)
		}
	}

	agg := &stubAggregator{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/m1/referrals/recent", nil)
	rec := httptest.NewRecorder()
	dashboardRouter(&stubDashboardUsecase{}, agg).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || agg.gotLimit != 5 {
		t.Errorf("default: status = %d limit = %d, want 200 and 5", rec.Code, agg.gotLimit)
	}
}
