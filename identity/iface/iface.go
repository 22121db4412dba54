//go:generate mockery --output=../mocks --all
package iface

import (
	"context"
)

// Account is the subset of the identity provider's user record the
// platform cares about.
type Account struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
}

// Provider wraps account management on the managed auth service.
type Provider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	DeleteAccount(ctx context.Context, uid string) error
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	UpdateEmail(ctx context.Context, uid, email string) error
	UpdatePassword(ctx context.Context, uid, password string) error
	SetEmailVerified(ctx context.Context, uid string, verified bool) error
	EmailVerificationLink(ctx context.Context, email string) (string, error)
}
