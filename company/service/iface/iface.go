//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/company/domain"
)

type ICompanyService interface {
	Get(ctx context.Context, companyID string) (*domain.Company, error)
	List(ctx context.Context, categoryID string, limit int) ([]*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) (string, error)
	Update(ctx context.Context, companyID string, company *domain.Company) error
	Delete(ctx context.Context, companyID string) error
}
