//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/review/domain"
)

type IReviewFirestoreDAL interface {
	Get(ctx context.Context, id string) (*domain.Review, error)
	ListByCompany(ctx context.Context, companyID string, limit int) ([]*domain.Review, error)
	GetByCompanyAndUser(ctx context.Context, companyID, userID string) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) (string, error)
	Delete(ctx context.Context, id string) error
	SetReply(ctx context.Context, id string, reply *domain.Reply) error
	SetStatus(ctx context.Context, id, status string) error
}
