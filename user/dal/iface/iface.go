//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/user/domain"
)

type IUserFirestoreDAL interface {
	Get(ctx context.Context, uid string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, uid string, user *domain.User) error
	Delete(ctx context.Context, uid string) error
	SetEmail(ctx context.Context, uid, email string) error
	SetEmailVerified(ctx context.Context, uid string, verified bool) error
	UpsertVerified(ctx context.Context, uid, email, displayName string) error
}
