package domain

import "errors"

var (
	ErrUnknownPeriod    = errors.New("unknown reward period")
	ErrUnknownTier      = errors.New("unknown reward tier")
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrMerchantExists   = errors.New("merchant already exists")
	ErrPlanLocked       = errors.New("reward plan is locked")
)
