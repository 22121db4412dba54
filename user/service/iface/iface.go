//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/user/domain"
)

type IUserService interface {
	CreateVerifiedUser(ctx context.Context, uid, email, displayName string) error
	ChangeEmail(ctx context.Context, uid, newEmail string) error
	CreateUser(ctx context.Context, input *domain.CreateUserInput) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	ChangeUserPassword(ctx context.Context, uid, password string) error
	MarkEmailVerified(ctx context.Context, uid string) error
	SendVerificationEmail(ctx context.Context, email string) error
	SendOTPEmail(ctx context.Context, email, otp, companyName string) (string, error)
}
