package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	claimDAL "github.com/r8estate/platform/claim/dal"
	claimDALMocks "github.com/r8estate/platform/claim/dal/mocks"
	claimDomain "github.com/r8estate/platform/claim/domain"
	companyDAL "github.com/r8estate/platform/company/dal"
	companyDALMocks "github.com/r8estate/platform/company/dal/mocks"
	companyDomain "github.com/r8estate/platform/company/domain"
	identityMocks "github.com/r8estate/platform/identity/mocks"
	"github.com/r8estate/platform/logger"
	loggerMocks "github.com/r8estate/platform/logger/mocks"
	"github.com/r8estate/platform/mailer"
	mailerMocks "github.com/r8estate/platform/mailer/mocks"
	"github.com/r8estate/platform/saga"
	userDALMocks "github.com/r8estate/platform/user/dal/mocks"
	userDomain "github.com/r8estate/platform/user/domain"
)

var (
	nineDigits = regexp.MustCompile(`^\d{9}$`).MatchString
	sixDigits  = regexp.MustCompile(`^\d{6}$`).MatchString
)

type fields struct {
	identity   *identityMocks.Provider
	mailer     *mailerMocks.Mailer
	claimDAL   *claimDALMocks.IClaimFirestoreDAL
	companyDAL *companyDALMocks.ICompanyFirestoreDAL
	userDAL    *userDALMocks.IUserFirestoreDAL
}

func newFields() *fields {
	return &fields{
		identity:   &identityMocks.Provider{},
		mailer:     &mailerMocks.Mailer{},
		claimDAL:   &claimDALMocks.IClaimFirestoreDAL{},
		companyDAL: &companyDALMocks.ICompanyFirestoreDAL{},
		userDAL:    &userDALMocks.IUserFirestoreDAL{},
	}
}

func newService(f *fields) *ClaimService {
	return &ClaimService{
		loggerProvider: testLoggerProvider(),
		identity:       f.identity,
		mailer:         f.mailer,
		claimDAL:       f.claimDAL,
		companyDAL:     f.companyDAL,
		userDAL:        f.userDAL,
	}
}

func testLoggerProvider() logger.Provider {
	return func(ctx context.Context) logger.ILogger {
		l := &loggerMocks.ILogger{}
		l.On("SetLabel", mock.Anything, mock.Anything).Maybe()
		l.On("SetLabels", mock.Anything).Maybe()
		l.On("Infof", mock.Anything, mock.Anything).Maybe()
		l.On("Infof", mock.Anything, mock.Anything, mock.Anything).Maybe()
		l.On("Errorf", mock.Anything, mock.Anything, mock.Anything).Maybe()

		return l
	}
}

func (f *fields) assertExpectations(t *testing.T) {
	f.identity.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
	f.claimDAL.AssertExpectations(t)
	f.companyDAL.AssertExpectations(t)
	f.userDAL.AssertExpectations(t)
}

func validInput() *claimDomain.ProcessInput {
	return &claimDomain.ProcessInput{
		BusinessEmail:   "a@x.com",
		SupervisorEmail: "b@x.com",
		CompanyID:       "C1",
		CompanyName:     "Acme",
	}
}

func TestClaimService_Process_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(input *claimDomain.ProcessInput)
		wantErr error
	}{
		{
			name:    "missing business email",
			mutate:  func(input *claimDomain.ProcessInput) { input.BusinessEmail = "" },
			wantErr: ErrBusinessEmailRequired,
		},
		{
			name:    "missing supervisor email",
			mutate:  func(input *claimDomain.ProcessInput) { input.SupervisorEmail = "" },
			wantErr: ErrSupervisorEmailRequired,
		},
		{
			name:    "missing company id",
			mutate:  func(input *claimDomain.ProcessInput) { input.CompanyID = "" },
			wantErr: ErrCompanyIDRequired,
		},
		{
			name:    "missing company name",
			mutate:  func(input *claimDomain.ProcessInput) { input.CompanyName = "" },
			wantErr: ErrCompanyNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields()
			s := newService(f)

			input := validInput()
			tt.mutate(input)

			result, err := s.Process(ctx, input)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)

			// No side effects: nothing was set up on any collaborator.
			f.assertExpectations(t)
		})
	}
}

func TestClaimService_Process_CompanyPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("company not found", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.companyDAL.On("Get", ctx, "C1").Return(nil, companyDAL.ErrCompanyNotFound).Once()

		result, err := s.Process(ctx, validInput())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, companyDAL.ErrCompanyNotFound)
		f.assertExpectations(t)
	})

	t.Run("company already claimed", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.companyDAL.On("Get", ctx, "C1").
			Return(&companyDomain.Company{Name: "Acme", Claimed: true}, nil).Once()

		result, err := s.Process(ctx, validInput())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrCompanyAlreadyClaimed)
		f.assertExpectations(t)
	})
}

func TestClaimService_Process_Success(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	var passwords []string

	f.companyDAL.On("Get", ctx, "C1").
		Return(&companyDomain.Company{Name: "Acme"}, nil).Once()

	f.claimDAL.On("Create", ctx, mock.MatchedBy(func(c *claimDomain.ClaimRequest) bool {
		return c.CompanyID == "C1" &&
			c.CompanyName == "Acme" &&
			c.Status == claimDomain.StatusPending &&
			sixDigits(c.TrackingNumber) &&
			nineDigits(c.BusinessPassword) &&
			nineDigits(c.SupervisorPassword) &&
			c.BusinessPassword != c.SupervisorPassword
	})).Return("claim-1", nil).Once()

	f.identity.On("CreateAccount", ctx, "a@x.com", mock.MatchedBy(nineDigits), "Acme").
		Run(func(args mock.Arguments) { passwords = append(passwords, args.String(2)) }).
		Return("biz-uid", nil).Once()
	f.identity.On("CreateAccount", ctx, "b@x.com", mock.MatchedBy(nineDigits), "Acme").
		Run(func(args mock.Arguments) { passwords = append(passwords, args.String(2)) }).
		Return("sup-uid", nil).Once()

	f.userDAL.On("Create", ctx, "biz-uid", mock.MatchedBy(func(u *userDomain.User) bool {
		return u.Email == "a@x.com" &&
			u.Role == userDomain.RoleUser &&
			u.ClaimRequestID == "claim-1" &&
			!u.IsSupervisor &&
			!u.IsEmailVerified
	})).Return(nil).Once()
	f.userDAL.On("Create", ctx, "sup-uid", mock.MatchedBy(func(u *userDomain.User) bool {
		return u.Email == "b@x.com" &&
			u.Role == userDomain.RoleUser &&
			u.ClaimRequestID == "claim-1" &&
			u.IsSupervisor
	})).Return(nil).Once()

	f.claimDAL.On("SetAccountIDs", ctx, "claim-1", "biz-uid", "sup-uid").Return(nil).Once()

	f.identity.On("EmailVerificationLink", ctx, "a@x.com").
		Return("http://localhost:3000/action?oobCode=abc", nil).Once()
	f.identity.On("EmailVerificationLink", ctx, "b@x.com").
		Return("http://localhost:3000/action?oobCode=def", nil).Once()

	f.mailer.On("Send", ctx, mock.MatchedBy(func(msg *mailer.Message) bool {
		return msg.ToEmail == "a@x.com" &&
			strings.Contains(msg.HTML, "http://localhost:3000/verification/action?oobCode=abc")
	})).Return("msg-1", nil).Once()
	f.mailer.On("Send", ctx, mock.MatchedBy(func(msg *mailer.Message) bool {
		return msg.ToEmail == "b@x.com" &&
			strings.Contains(msg.HTML, "http://localhost:3000/verification/action?oobCode=def")
	})).Return("msg-2", nil).Once()

	result, err := s.Process(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Success)
	assert.True(t, sixDigits(result.TrackingNumber))

	assert.Len(t, passwords, 2)
	assert.NotEqual(t, passwords[0], passwords[1])

	f.assertExpectations(t)
}

func TestClaimService_Process_CompensatesOnSupervisorFailure(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	f.companyDAL.On("Get", ctx, "C1").
		Return(&companyDomain.Company{Name: "Acme"}, nil).Once()
	f.claimDAL.On("Create", ctx, mock.Anything).Return("claim-1", nil).Once()

	f.identity.On("CreateAccount", ctx, "a@x.com", mock.Anything, "Acme").
		Return("biz-uid", nil).Once()
	f.identity.On("CreateAccount", ctx, "b@x.com", mock.Anything, "Acme").
		Return("", errors.New("auth unavailable")).Once()

	// Rollback: the business account and the claim request document go away.
	f.identity.On("DeleteAccount", ctx, "biz-uid").Return(nil).Once()
	f.claimDAL.On("Delete", ctx, "claim-1").Return(nil).Once()

	result, err := s.Process(ctx, validInput())

	assert.Nil(t, result)

	var sagaErr *saga.Error
	assert.ErrorAs(t, err, &sagaErr)
	assert.Equal(t, "create supervisor account", sagaErr.StepName)
	assert.NoError(t, sagaErr.CompensationErr)

	f.userDAL.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestClaimService_ProcessNonDomain_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing claim request id", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		result, err := s.ProcessNonDomain(ctx, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrClaimRequestIDRequired)
		f.assertExpectations(t)
	})

	t.Run("claim request not found", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.claimDAL.On("Get", ctx, "claim-404").Return(nil, claimDAL.ErrClaimNotFound).Once()

		result, err := s.ProcessNonDomain(ctx, "claim-404")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, claimDAL.ErrClaimNotFound)
		f.assertExpectations(t)
	})
}

func TestClaimService_ProcessNonDomain_ReusesStoredPasswords(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	f.claimDAL.On("Get", ctx, "claim-1").Return(&claimDomain.ClaimRequest{
		CompanyID:          "C1",
		CompanyName:        "Acme",
		BusinessEmail:      "a@x.com",
		SupervisorEmail:    "b@x.com",
		BusinessPassword:   "111111111",
		SupervisorPassword: "222222222",
		TrackingNumber:     "123456",
		Status:             claimDomain.StatusPending,
		ID:                 "claim-1",
	}, nil).Once()

	f.identity.On("CreateAccount", ctx, "a@x.com", "111111111", "Acme").
		Return("biz-uid", nil).Once()
	f.identity.On("CreateAccount", ctx, "b@x.com", "222222222", "Acme").
		Return("sup-uid", nil).Once()

	f.userDAL.On("Create", ctx, "biz-uid", mock.Anything).Return(nil).Once()
	f.userDAL.On("Create", ctx, "sup-uid", mock.Anything).Return(nil).Once()

	f.claimDAL.On("SetAccountIDs", ctx, "claim-1", "biz-uid", "sup-uid").Return(nil).Once()

	f.identity.On("EmailVerificationLink", ctx, "a@x.com").
		Return("http://localhost:3000/action?oobCode=abc", nil).Once()
	f.identity.On("EmailVerificationLink", ctx, "b@x.com").
		Return("http://localhost:3000/action?oobCode=def", nil).Once()

	f.mailer.On("Send", ctx, mock.Anything).Return("msg-1", nil).Twice()

	result, err := s.ProcessNonDomain(ctx, "claim-1")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "123456", result.TrackingNumber)

	f.claimDAL.AssertNotCalled(t, "SetPasswords", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestClaimService_ProcessNonDomain_GeneratesMissingPasswords(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	f.claimDAL.On("Get", ctx, "claim-1").Return(&claimDomain.ClaimRequest{
		CompanyID:       "C1",
		CompanyName:     "Acme",
		BusinessEmail:   "a@x.com",
		SupervisorEmail: "b@x.com",
		TrackingNumber:  "123456",
		Status:          claimDomain.StatusPending,
		ID:              "claim-1",
	}, nil).Once()

	f.claimDAL.On("SetPasswords", ctx, "claim-1", mock.MatchedBy(nineDigits), mock.MatchedBy(nineDigits)).
		Return(nil).Once()

	f.identity.On("CreateAccount", ctx, "a@x.com", mock.MatchedBy(nineDigits), "Acme").
		Return("biz-uid", nil).Once()
	f.identity.On("CreateAccount", ctx, "b@x.com", mock.MatchedBy(nineDigits), "Acme").
		Return("sup-uid", nil).Once()

	f.userDAL.On("Create", ctx, "biz-uid", mock.Anything).Return(nil).Once()
	f.userDAL.On("Create", ctx, "sup-uid", mock.Anything).Return(nil).Once()

	f.claimDAL.On("SetAccountIDs", ctx, "claim-1", "biz-uid", "sup-uid").Return(nil).Once()

	f.identity.On("EmailVerificationLink", ctx, mock.Anything).
		Return("http://localhost:3000/action?oobCode=abc", nil).Twice()
	f.mailer.On("Send", ctx, mock.Anything).Return("msg-1", nil).Twice()

	result, err := s.ProcessNonDomain(ctx, "claim-1")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	f.assertExpectations(t)
}

func TestClaimService_ProcessNonDomain_KeepsClaimDocOnFailure(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	f.claimDAL.On("Get", ctx, "claim-1").Return(&claimDomain.ClaimRequest{
		CompanyID:          "C1",
		CompanyName:        "Acme",
		BusinessEmail:      "a@x.com",
		SupervisorEmail:    "b@x.com",
		BusinessPassword:   "111111111",
		SupervisorPassword: "222222222",
		TrackingNumber:     "123456",
		ID:                 "claim-1",
	}, nil).Once()

	f.identity.On("CreateAccount", ctx, "a@x.com", "111111111", "Acme").
		Return("biz-uid", nil).Once()
	f.identity.On("CreateAccount", ctx, "b@x.com", "222222222", "Acme").
		Return("sup-uid", nil).Once()

	f.userDAL.On("Create", ctx, "biz-uid", mock.Anything).Return(nil).Once()
	f.userDAL.On("Create", ctx, "sup-uid", mock.Anything).Return(nil).Once()

	f.claimDAL.On("SetAccountIDs", ctx, "claim-1", "biz-uid", "sup-uid").Return(nil).Once()

	f.identity.On("EmailVerificationLink", ctx, "a@x.com").
		Return("", errors.New("link generation failed")).Once()

	// Rollback reverts this run's updates but leaves the claim document alone.
	f.claimDAL.On("ClearAccountIDs", ctx, "claim-1").Return(nil).Once()
	f.userDAL.On("Delete", ctx, "sup-uid").Return(nil).Once()
	f.userDAL.On("Delete", ctx, "biz-uid").Return(nil).Once()
	f.identity.On("DeleteAccount", ctx, "sup-uid").Return(nil).Once()
	f.identity.On("DeleteAccount", ctx, "biz-uid").Return(nil).Once()

	result, err := s.ProcessNonDomain(ctx, "claim-1")

	assert.Nil(t, result)

	var sagaErr *saga.Error
	assert.ErrorAs(t, err, &sagaErr)
	assert.Equal(t, "email business credentials", sagaErr.StepName)

	f.claimDAL.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestClaimService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		assert.ErrorIs(t, s.UpdateStatus(ctx, "claim-1", "archived"), ErrInvalidStatus)
		f.assertExpectations(t)
	})

	t.Run("approval marks the company claimed", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.claimDAL.On("Get", ctx, "claim-1").
			Return(&claimDomain.ClaimRequest{ID: "claim-1", CompanyID: "C1"}, nil).Once()
		f.claimDAL.On("SetStatus", ctx, "claim-1", claimDomain.StatusApproved).Return(nil).Once()
		f.companyDAL.On("SetClaimed", ctx, "C1", true).Return(nil).Once()

		assert.NoError(t, s.UpdateStatus(ctx, "claim-1", claimDomain.StatusApproved))
		f.assertExpectations(t)
	})

	t.Run("rejection leaves the company untouched", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.claimDAL.On("Get", ctx, "claim-1").
			Return(&claimDomain.ClaimRequest{ID: "claim-1", CompanyID: "C1"}, nil).Once()
		f.claimDAL.On("SetStatus", ctx, "claim-1", claimDomain.StatusRejected).Return(nil).Once()

		assert.NoError(t, s.UpdateStatus(ctx, "claim-1", claimDomain.StatusRejected))
		f.companyDAL.AssertNotCalled(t, "SetClaimed", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}
