package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	claimDALMocks "github.com/r8estate/platform/claim/dal/mocks"
	identityMocks "github.com/r8estate/platform/identity/mocks"
	"github.com/r8estate/platform/logger"
	loggerMocks "github.com/r8estate/platform/logger/mocks"
	mailerMocks "github.com/r8estate/platform/mailer/mocks"
	userDAL "github.com/r8estate/platform/user/dal"
	userDALMocks "github.com/r8estate/platform/user/dal/mocks"
	"github.com/r8estate/platform/user/domain"
)

type fields struct {
	identity *identityMocks.Provider
	mailer   *mailerMocks.Mailer
	userDAL  *userDALMocks.IUserFirestoreDAL
	claimDAL *claimDALMocks.IClaimFirestoreDAL
}

func newFields() *fields {
	return &fields{
		identity: &identityMocks.Provider{},
		mailer:   &mailerMocks.Mailer{},
		userDAL:  &userDALMocks.IUserFirestoreDAL{},
		claimDAL: &claimDALMocks.IClaimFirestoreDAL{},
	}
}

func newService(f *fields) *UserService {
	return &UserService{
		loggerProvider: testLoggerProvider(),
		identity:       f.identity,
		mailer:         f.mailer,
		userDAL:        f.userDAL,
		claimDAL:       f.claimDAL,
	}
}

func testLoggerProvider() logger.Provider {
	return func(ctx context.Context) logger.ILogger {
		l := &loggerMocks.ILogger{}
		l.On("SetLabel", mock.Anything, mock.Anything).Maybe()
		l.On("Infof", mock.Anything, mock.Anything).Maybe()

		return l
	}
}

func (f *fields) assertExpectations(t *testing.T) {
	f.identity.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
	f.userDAL.AssertExpectations(t)
	f.claimDAL.AssertExpectations(t)
}

func TestUserService_CreateVerifiedUser(t *testing.T) {
	ctx := context.Background()

	t.Run("validates input", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		assert.ErrorIs(t, s.CreateVerifiedUser(ctx, "", "a@x.com", ""), ErrUIDRequired)
		assert.ErrorIs(t, s.CreateVerifiedUser(ctx, "uid-1", "", ""), ErrEmailRequired)
		f.assertExpectations(t)
	})

	t.Run("upserts the verified document", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.userDAL.On("UpsertVerified", ctx, "uid-1", "a@x.com", "Alice").Return(nil).Once()

		assert.NoError(t, s.CreateVerifiedUser(ctx, "uid-1", "a@x.com", "Alice"))
		f.assertExpectations(t)
	})
}

func TestUserService_ChangeEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("updates auth, document and sends verification", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.identity.On("UpdateEmail", ctx, "uid-1", "new@x.com").Return(nil).Once()
		f.userDAL.On("SetEmail", ctx, "uid-1", "new@x.com").Return(nil).Once()
		f.identity.On("GetAccountByEmail", ctx, "new@x.com").Return(nil, nil).Once()
		f.identity.On("EmailVerificationLink", ctx, "new@x.com").
			Return("http://localhost:3000/action?oobCode=abc", nil).Once()
		f.mailer.On("Send", ctx, mock.Anything).Return("msg-1", nil).Once()

		assert.NoError(t, s.ChangeEmail(ctx, "uid-1", "new@x.com"))
		f.assertExpectations(t)
	})

	t.Run("auth failure stops before the document update", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.identity.On("UpdateEmail", ctx, "uid-1", "new@x.com").
			Return(errors.New("email already in use")).Once()

		assert.Error(t, s.ChangeEmail(ctx, "uid-1", "new@x.com"))
		f.userDAL.AssertNotCalled(t, "SetEmail", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown role", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		_, err := s.CreateUser(ctx, &domain.CreateUserInput{
			Email:    "a@x.com",
			Password: "secret123",
			Role:     "owner",
		})

		assert.ErrorIs(t, err, ErrInvalidRole)
		f.assertExpectations(t)
	})

	t.Run("rejects an email already in use", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.userDAL.On("GetByEmail", ctx, "taken@x.com").
			Return(&domain.User{ID: "uid-0", Email: "taken@x.com"}, nil).Once()

		_, err := s.CreateUser(ctx, &domain.CreateUserInput{
			Email:    "taken@x.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrEmailExists)
		f.identity.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("defaults to the user role", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.userDAL.On("GetByEmail", ctx, "a@x.com").
			Return(nil, userDAL.ErrUserNotFound).Once()
		f.identity.On("CreateAccount", ctx, "a@x.com", "secret123", "Alice").
			Return("uid-1", nil).Once()
		f.userDAL.On("Create", ctx, "uid-1", mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "a@x.com" && u.Role == domain.RoleUser && !u.IsEmailVerified
		})).Return(nil).Once()

		uid, err := s.CreateUser(ctx, &domain.CreateUserInput{
			Email:       "a@x.com",
			Password:    "secret123",
			DisplayName: "Alice",
		})

		assert.NoError(t, err)
		assert.Equal(t, "uid-1", uid)
		f.assertExpectations(t)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	f.identity.On("DeleteAccount", ctx, "uid-1").Return(nil).Once()
	f.userDAL.On("Delete", ctx, "uid-1").Return(nil).Once()

	assert.NoError(t, s.DeleteUser(ctx, "uid-1"))
	f.assertExpectations(t)
}

func TestUserService_MarkEmailVerified(t *testing.T) {
	ctx := context.Background()

	t.Run("plain user", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.userDAL.On("Get", ctx, "uid-1").Return(&domain.User{Email: "a@x.com"}, nil).Once()
		f.identity.On("SetEmailVerified", ctx, "uid-1", true).Return(nil).Once()
		f.userDAL.On("SetEmailVerified", ctx, "uid-1", true).Return(nil).Once()

		assert.NoError(t, s.MarkEmailVerified(ctx, "uid-1"))
		f.claimDAL.AssertNotCalled(t, "SetEmailVerified", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("supervisor raises the claim flag", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.userDAL.On("Get", ctx, "uid-2").Return(&domain.User{
			Email:          "b@x.com",
			ClaimRequestID: "claim-1",
			IsSupervisor:   true,
		}, nil).Once()
		f.identity.On("SetEmailVerified", ctx, "uid-2", true).Return(nil).Once()
		f.userDAL.On("SetEmailVerified", ctx, "uid-2", true).Return(nil).Once()
		f.claimDAL.On("SetEmailVerified", ctx, "claim-1", true).Return(nil).Once()

		assert.NoError(t, s.MarkEmailVerified(ctx, "uid-2"))
		f.assertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.userDAL.On("Get", ctx, "uid-404").Return(nil, userDAL.ErrUserNotFound).Once()

		assert.ErrorIs(t, s.MarkEmailVerified(ctx, "uid-404"), userDAL.ErrUserNotFound)
		f.assertExpectations(t)
	})
}
