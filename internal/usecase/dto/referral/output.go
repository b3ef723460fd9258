package referraldto

import "time"

type RecentReferralOutput struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
	Status   string    `json:"status"`
}
