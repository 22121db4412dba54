//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/claim/domain"
)

type IClaimService interface {
	Process(ctx context.Context, input *domain.ProcessInput) (*domain.ProcessResult, error)
	ProcessNonDomain(ctx context.Context, claimRequestID string) (*domain.ProcessResult, error)
	UpdateStatus(ctx context.Context, claimRequestID, status string) error
}
