//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/claim/domain"
)

type IClaimFirestoreDAL interface {
	Get(ctx context.Context, id string) (*domain.ClaimRequest, error)
	Create(ctx context.Context, claim *domain.ClaimRequest) (string, error)
	Delete(ctx context.Context, id string) error
	SetAccountIDs(ctx context.Context, id, userID, supervisorID string) error
	ClearAccountIDs(ctx context.Context, id string) error
	SetPasswords(ctx context.Context, id, businessPassword, supervisorPassword string) error
	SetEmailVerified(ctx context.Context, id string, supervisor bool) error
	SetStatus(ctx context.Context, id, status string) error
}
