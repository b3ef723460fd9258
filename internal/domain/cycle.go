package domain

import (
	"context"
	"time"
)

type PayoutStatus string

const (
	PayoutPaid   PayoutStatus = "paid"
	PayoutUnpaid PayoutStatus = "unpaid"
)

// Cycle is an explicit, persisted measurement window. Cycles are assigned
// by the settlement process; this service only reads them. The window is
// half-open: StartDate inclusive, EndDate exclusive.
type Cycle struct {
	ID           string
	MerchantID   string
	Period       Period
	Tier         Tier
	StartDate    time.Time
	EndDate      time.Time
	Threshold    int
	AmountDue    float64
	PayoutStatus PayoutStatus
}

type CycleRepository interface {
	// GetCycle returns (nil, nil) when no such cycle exists.
	GetCycle(ctx context.Context, merchantID, cycleID string) (*Cycle, error)
}
