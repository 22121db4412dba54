//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/review/domain"
)

type IReviewService interface {
	Get(ctx context.Context, reviewID string) (*domain.Review, error)
	ListByCompany(ctx context.Context, companyID string, limit int) ([]*domain.Review, error)
	Create(ctx context.Context, input *domain.CreateReviewInput) (string, error)
	Reply(ctx context.Context, reviewID, content, repliedBy string) error
	SetStatus(ctx context.Context, reviewID, status string) error
	Delete(ctx context.Context, reviewID string) error
}
