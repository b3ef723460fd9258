package domain

import (
	"context"
	"time"
)

// Referral is one successful referral under a merchant. Records are written
// by the ingestion pipeline; this service reads and aggregates them.
type Referral struct {
	ID         string
	MerchantID string
	Name       string
	JoinedAt   *time.Time
	CreatedAt  *time.Time
	Cashback   float64
	IsActive   bool
	TxCount    int
}

// JoinedDate resolves the display date: joined timestamp when present, the
// created timestamp otherwise, the supplied instant as a last resort.
func (r *Referral) JoinedDate(now time.Time) time.Time {
	if r.JoinedAt != nil {
		return *r.JoinedAt
	}
	if r.CreatedAt != nil {
		return *r.CreatedAt
	}
	return now
}

// ReferralFilters is a conjunction of query constraints. Zero values mean
// the constraint is absent. JoinedFrom is inclusive, JoinedBefore exclusive.
type ReferralFilters struct {
	ActiveOnly        bool
	JoinedFrom        time.Time
	JoinedBefore      time.Time
	OrderByJoinedDesc bool
	Limit             int
}

type ReferralRepository interface {
	Query(ctx context.Context, merchantID string, filters ReferralFilters) ([]*Referral, error)
	// CountMatching is the server-side aggregate. Callers must tolerate it
	// being unsupported and fall back to Query.
	CountMatching(ctx context.Context, merchantID string, filters ReferralFilters) (int64, error)
	UpsertReferral(ctx context.Context, referral *Referral) error
}
