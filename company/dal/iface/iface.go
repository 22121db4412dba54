//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/company/domain"
)

type ICompanyFirestoreDAL interface {
	Get(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, categoryID string, limit int) ([]*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) (string, error)
	Update(ctx context.Context, id string, company *domain.Company) error
	Delete(ctx context.Context, id string) error
	SetClaimed(ctx context.Context, id string, claimed bool) error
	SetRating(ctx context.Context, id string, rating float64, totalReviews int) error
}
