//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/category/domain"
)

type ICategoryFirestoreDAL interface {
	Get(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (string, error)
	Delete(ctx context.Context, id string) error
}
