package identity

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/auth"

	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/identity/iface"
)

var (
	ErrAccountNotFound = errors.New("auth account not found")
)

// FirebaseProvider implements iface.Provider on top of the firebase
// admin auth client.
type FirebaseProvider struct {
	authFun connection.AuthFromContextFun
}

func NewFirebaseProvider(authFun connection.AuthFromContextFun) *FirebaseProvider {
	return &FirebaseProvider{
		authFun: authFun,
	}
}

func (p *FirebaseProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false)

	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := p.authFun(ctx).CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return record.UID, nil
}

func (p *FirebaseProvider) DeleteAccount(ctx context.Context, uid string) error {
	return p.authFun(ctx).DeleteUser(ctx, uid)
}

func (p *FirebaseProvider) GetAccountByEmail(ctx context.Context, email string) (*iface.Account, error) {
	record, err := p.authFun(ctx).GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return &iface.Account{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		EmailVerified: record.EmailVerified,
	}, nil
}

func (p *FirebaseProvider) UpdateEmail(ctx context.Context, uid, email string) error {
	params := (&auth.UserToUpdate{}).
		Email(email).
		EmailVerified(false)

	_, err := p.authFun(ctx).UpdateUser(ctx, uid, params)

	return err
}

func (p *FirebaseProvider) UpdatePassword(ctx context.Context, uid, password string) error {
	params := (&auth.UserToUpdate{}).Password(password)

	_, err := p.authFun(ctx).UpdateUser(ctx, uid, params)

	return err
}

func (p *FirebaseProvider) SetEmailVerified(ctx context.Context, uid string, verified bool) error {
	params := (&auth.UserToUpdate{}).EmailVerified(verified)

	_, err := p.authFun(ctx).UpdateUser(ctx, uid, params)

	return err
}

func (p *FirebaseProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	return p.authFun(ctx).EmailVerificationLink(ctx, email)
}
