package service

import (
	"context"

	"github.com/r8estate/platform/common"
	"github.com/r8estate/platform/identity"
	"github.com/r8estate/platform/logger"
	"github.com/r8estate/platform/mailer"
)

// SendVerificationEmail issues a fresh verification link for the account
// behind email and mails it, with the link pointed at the client-side
// /verification route.
func (s *UserService) SendVerificationEmail(ctx context.Context, email string) error {
	log := s.loggerProvider(ctx)

	if email == "" {
		return ErrEmailRequired
	}

	if _, err := s.identity.GetAccountByEmail(ctx, email); err != nil {
		return err
	}

	link, err := s.identity.EmailVerificationLink(ctx, email)
	if err != nil {
		return err
	}

	link = identity.RewriteVerificationLink(link, common.Domain)

	if _, err := s.mailer.Send(ctx, mailer.VerificationMessage(email, link)); err != nil {
		return err
	}

	log.SetLabel(logger.LabelEmail, email)
	log.Infof("verification email sent to %s", email)

	return nil
}

// SendOTPEmail mails a one-time code and returns the provider message id.
func (s *UserService) SendOTPEmail(ctx context.Context, email, otp, companyName string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}

	if otp == "" {
		return "", ErrOTPRequired
	}

	return s.mailer.Send(ctx, mailer.OTPMessage(email, otp, companyName))
}
