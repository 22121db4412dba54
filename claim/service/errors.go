package service

import "errors"

var (
	ErrBusinessEmailRequired   = errors.New("businessEmail is required")
	ErrSupervisorEmailRequired = errors.New("supervisorEmail is required")
	ErrCompanyIDRequired       = errors.New("companyId is required")
	ErrCompanyNameRequired     = errors.New("companyName is required")
	ErrClaimRequestIDRequired  = errors.New("claimRequestId is required")
	ErrInvalidStatus           = errors.New("invalid claim status")

	ErrCompanyAlreadyClaimed = errors.New("company is already claimed")
)
