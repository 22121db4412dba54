package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/r8estate/platform/identity"
	identityIface "github.com/r8estate/platform/identity/iface"
	"github.com/r8estate/platform/mailer"
)

func TestUserService_SendVerificationEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown account", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.identity.On("GetAccountByEmail", ctx, "ghost@x.com").
			Return(nil, identity.ErrAccountNotFound).Once()

		assert.ErrorIs(t, s.SendVerificationEmail(ctx, "ghost@x.com"), identity.ErrAccountNotFound)
		f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("sends the rewritten link", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.identity.On("GetAccountByEmail", ctx, "a@x.com").
			Return(&identityIface.Account{UID: "uid-1", Email: "a@x.com"}, nil).Once()
		f.identity.On("EmailVerificationLink", ctx, "a@x.com").
			Return("http://localhost:3000/action?oobCode=abc", nil).Once()
		f.mailer.On("Send", ctx, mock.MatchedBy(func(msg *mailer.Message) bool {
			return msg.ToEmail == "a@x.com" &&
				strings.Contains(msg.HTML, "http://localhost:3000/verification/action?oobCode=abc")
		})).Return("msg-1", nil).Once()

		assert.NoError(t, s.SendVerificationEmail(ctx, "a@x.com"))
		f.assertExpectations(t)
	})
}

func TestUserService_SendOTPEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("validates input", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		_, err := s.SendOTPEmail(ctx, "", "123456", "Acme")
		assert.ErrorIs(t, err, ErrEmailRequired)

		_, err = s.SendOTPEmail(ctx, "a@x.com", "", "Acme")
		assert.ErrorIs(t, err, ErrOTPRequired)

		f.assertExpectations(t)
	})

	t.Run("returns the provider message id", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.mailer.On("Send", ctx, mock.MatchedBy(func(msg *mailer.Message) bool {
			return msg.ToEmail == "a@x.com" &&
				strings.Contains(msg.HTML, "123456") &&
				strings.Contains(msg.HTML, "Acme")
		})).Return("msg-42", nil).Once()

		messageID, err := s.SendOTPEmail(ctx, "a@x.com", "123456", "Acme")

		assert.NoError(t, err)
		assert.Equal(t, "msg-42", messageID)
		f.assertExpectations(t)
	})
}
