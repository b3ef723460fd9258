package merchantdto

import "github.com/hocpay/rewards-service/internal/domain"

// CompleteOnboardingInput carries the signup draft plus the initially
// chosen reward plan. KYC documents are already uploaded by the intake
// flow; only their storage paths arrive here.
type CompleteOnboardingInput struct {
	MerchantID  string        `json:"merchant_id" validate:"required"`
	FullName    string        `json:"full_name" validate:"required"`
	Email       string        `json:"email" validate:"required"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	Country     string        `json:"country"`
	BVN         string        `json:"bvn"`
	GovIDPath   string        `json:"gov_id_path"`
	UtilityPath string        `json:"utility_path"`
	Period      domain.Period `json:"period" validate:"required"`
	Tier        domain.Tier   `json:"tier" validate:"required"`
}
