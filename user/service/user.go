package service

import (
	"context"
	"errors"

	"github.com/r8estate/platform/logger"
	userDAL "github.com/r8estate/platform/user/dal"
	"github.com/r8estate/platform/user/domain"
)

// CreateVerifiedUser upserts the user document for an account whose email is
// already verified. Calling it again for the same uid is a no-op merge.
func (s *UserService) CreateVerifiedUser(ctx context.Context, uid, email, displayName string) error {
	if uid == "" {
		return ErrUIDRequired
	}

	if email == "" {
		return ErrEmailRequired
	}

	return s.userDAL.UpsertVerified(ctx, uid, email, displayName)
}

// ChangeEmail updates the auth account and user document to the new address,
// resets the verified flag and sends a fresh verification email.
func (s *UserService) ChangeEmail(ctx context.Context, uid, newEmail string) error {
	log := s.loggerProvider(ctx)

	if uid == "" {
		return ErrUIDRequired
	}

	if newEmail == "" {
		return ErrEmailRequired
	}

	if err := s.identity.UpdateEmail(ctx, uid, newEmail); err != nil {
		return err
	}

	if err := s.userDAL.SetEmail(ctx, uid, newEmail); err != nil {
		return err
	}

	log.SetLabel(logger.LabelUserID, uid)
	log.Infof("email changed for user %s", uid)

	return s.SendVerificationEmail(ctx, newEmail)
}

// CreateUser is the admin operation creating an auth account together with
// its user document.
func (s *UserService) CreateUser(ctx context.Context, input *domain.CreateUserInput) (string, error) {
	if input.Email == "" {
		return "", ErrEmailRequired
	}

	if input.Password == "" {
		return "", ErrPasswordRequired
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	if role != domain.RoleUser && role != domain.RoleAdmin {
		return "", ErrInvalidRole
	}

	if _, err := s.userDAL.GetByEmail(ctx, input.Email); err == nil {
		return "", ErrEmailExists
	} else if !errors.Is(err, userDAL.ErrUserNotFound) {
		return "", err
	}

	uid, err := s.identity.CreateAccount(ctx, input.Email, input.Password, input.DisplayName)
	if err != nil {
		return "", err
	}

	if err := s.userDAL.Create(ctx, uid, &domain.User{
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Role:        role,
	}); err != nil {
		return "", err
	}

	return uid, nil
}

// DeleteUser removes the auth account and its user document.
func (s *UserService) DeleteUser(ctx context.Context, uid string) error {
	if uid == "" {
		return ErrUIDRequired
	}

	if err := s.identity.DeleteAccount(ctx, uid); err != nil {
		return err
	}

	return s.userDAL.Delete(ctx, uid)
}

// ChangeUserPassword is the admin operation resetting an account password.
func (s *UserService) ChangeUserPassword(ctx context.Context, uid, password string) error {
	if uid == "" {
		return ErrUIDRequired
	}

	if password == "" {
		return ErrPasswordRequired
	}

	return s.identity.UpdatePassword(ctx, uid, password)
}

// MarkEmailVerified flips the verified flag on the auth account and user
// document. When the user belongs to a claim request, the matching
// verification flag on the claim request document is raised as well.
func (s *UserService) MarkEmailVerified(ctx context.Context, uid string) error {
	if uid == "" {
		return ErrUIDRequired
	}

	user, err := s.userDAL.Get(ctx, uid)
	if err != nil {
		return err
	}

	if err := s.identity.SetEmailVerified(ctx, uid, true); err != nil {
		return err
	}

	if err := s.userDAL.SetEmailVerified(ctx, uid, true); err != nil {
		return err
	}

	if user.ClaimRequestID != "" {
		return s.claimDAL.SetEmailVerified(ctx, user.ClaimRequestID, user.IsSupervisor)
	}

	return nil
}
