package service

import (
	"context"

	claimDomain "github.com/r8estate/platform/claim/domain"
	"github.com/r8estate/platform/common"
	"github.com/r8estate/platform/identity"
	"github.com/r8estate/platform/logger"
	"github.com/r8estate/platform/mailer"
	"github.com/r8estate/platform/saga"
	userDomain "github.com/r8estate/platform/user/domain"
)

const (
	passwordLength       = 9
	trackingNumberLength = 6
)

// Process runs the full company claim workflow: create the claim request,
// create the business and supervisor auth accounts with their user documents,
// then email each address its credentials and verification link. The
// side-effecting steps run on a saga, so a failure at any point removes
// everything created before it.
func (s *ClaimService) Process(ctx context.Context, input *claimDomain.ProcessInput) (*claimDomain.ProcessResult, error) {
	log := s.loggerProvider(ctx)

	if err := validateProcessInput(input); err != nil {
		return nil, err
	}

	businessPassword := common.RandomDigitsN(passwordLength)
	supervisorPassword := common.RandomDigitsN(passwordLength)

	company, err := s.companyDAL.Get(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	if company.Claimed {
		return nil, ErrCompanyAlreadyClaimed
	}

	trackingNumber := common.RandomDigitsN(trackingNumberLength)

	claim := &claimDomain.ClaimRequest{
		CompanyID:          input.CompanyID,
		CompanyName:        input.CompanyName,
		RequesterID:        input.RequesterID,
		RequesterName:      input.RequesterName,
		BusinessEmail:      input.BusinessEmail,
		SupervisorEmail:    input.SupervisorEmail,
		ContactPhone:       input.ContactPhone,
		BusinessPassword:   businessPassword,
		SupervisorPassword: supervisorPassword,
		Status:             claimDomain.StatusPending,
		TrackingNumber:     trackingNumber,
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.CompanyName
	}

	var claimID string

	steps := []saga.Step{
		{
			Name: "create claim request",
			Run: func(ctx context.Context) error {
				id, err := s.claimDAL.Create(ctx, claim)
				if err != nil {
					return err
				}

				claimID = id

				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.claimDAL.Delete(ctx, claimID)
			},
		},
	}

	// The claim request document is deleted outright on rollback, so the
	// account-id update needs no compensation of its own.
	steps = append(steps, s.accountSteps(claim, &claimID, displayName, false)...)

	if err := saga.Run(ctx, steps); err != nil {
		log.Errorf("claim process for company %s failed: %v", input.CompanyID, err)
		return nil, err
	}

	log.SetLabels(map[string]string{
		logger.LabelCompanyID: input.CompanyID,
		logger.LabelClaimID:   claimID,
	})
	log.Infof("claim request %s created for company %s", claimID, input.CompanyID)

	return &claimDomain.ProcessResult{
		Success:        true,
		Message:        "claim request created",
		TrackingNumber: trackingNumber,
	}, nil
}

// ProcessNonDomain reruns the account/email sequence for an existing claim
// request, covering claims whose business email does not match the company
// domain. Stored passwords are reused when present. The pre-existing claim
// request document is never deleted on rollback; only the account ids written
// by this run are reverted.
func (s *ClaimService) ProcessNonDomain(ctx context.Context, claimRequestID string) (*claimDomain.ProcessResult, error) {
	log := s.loggerProvider(ctx)

	if claimRequestID == "" {
		return nil, ErrClaimRequestIDRequired
	}

	claim, err := s.claimDAL.Get(ctx, claimRequestID)
	if err != nil {
		return nil, err
	}

	generated := false

	if claim.BusinessPassword == "" {
		claim.BusinessPassword = common.RandomDigitsN(passwordLength)
		generated = true
	}

	if claim.SupervisorPassword == "" {
		claim.SupervisorPassword = common.RandomDigitsN(passwordLength)
		generated = true
	}

	var steps []saga.Step

	if generated {
		steps = append(steps, saga.Step{
			Name: "persist generated passwords",
			Run: func(ctx context.Context) error {
				return s.claimDAL.SetPasswords(ctx, claimRequestID, claim.BusinessPassword, claim.SupervisorPassword)
			},
		})
	}

	claimID := claimRequestID
	steps = append(steps, s.accountSteps(claim, &claimID, claim.CompanyName, true)...)

	if err := saga.Run(ctx, steps); err != nil {
		log.Errorf("non-domain claim process %s failed: %v", claimRequestID, err)
		return nil, err
	}

	log.SetLabel(logger.LabelClaimID, claimRequestID)
	log.Infof("non-domain claim request %s processed", claimRequestID)

	return &claimDomain.ProcessResult{
		Success:        true,
		Message:        "claim request processed",
		TrackingNumber: claim.TrackingNumber,
	}, nil
}

// UpdateStatus moves a claim request between pending/approved/rejected.
// Approval also marks the company as claimed.
func (s *ClaimService) UpdateStatus(ctx context.Context, claimRequestID, status string) error {
	if claimRequestID == "" {
		return ErrClaimRequestIDRequired
	}

	switch status {
	case claimDomain.StatusPending, claimDomain.StatusApproved, claimDomain.StatusRejected:
	default:
		return ErrInvalidStatus
	}

	claim, err := s.claimDAL.Get(ctx, claimRequestID)
	if err != nil {
		return err
	}

	if err := s.claimDAL.SetStatus(ctx, claimRequestID, status); err != nil {
		return err
	}

	if status == claimDomain.StatusApproved {
		return s.companyDAL.SetClaimed(ctx, claim.CompanyID, true)
	}

	return nil
}

func validateProcessInput(input *claimDomain.ProcessInput) error {
	switch {
	case input.BusinessEmail == "":
		return ErrBusinessEmailRequired
	case input.SupervisorEmail == "":
		return ErrSupervisorEmailRequired
	case input.CompanyID == "":
		return ErrCompanyIDRequired
	case input.CompanyName == "":
		return ErrCompanyNameRequired
	}

	return nil
}

// accountSteps builds the saga steps shared by both claim variants: create the
// two auth accounts, write their user documents, attach the account ids to the
// claim request, then send both credentials emails. claimID is a pointer
// because the standard variant only learns the id once its first step has run.
func (s *ClaimService) accountSteps(claim *claimDomain.ClaimRequest, claimID *string, displayName string, detachOnFailure bool) []saga.Step {
	var businessUID, supervisorUID string

	var attachCompensate func(ctx context.Context) error

	if detachOnFailure {
		attachCompensate = func(ctx context.Context) error {
			return s.claimDAL.ClearAccountIDs(ctx, *claimID)
		}
	}

	return []saga.Step{
		{
			Name: "create business account",
			Run: func(ctx context.Context) error {
				uid, err := s.identity.CreateAccount(ctx, claim.BusinessEmail, claim.BusinessPassword, displayName)
				if err != nil {
					return err
				}

				businessUID = uid

				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.identity.DeleteAccount(ctx, businessUID)
			},
		},
		{
			Name: "create supervisor account",
			Run: func(ctx context.Context) error {
				uid, err := s.identity.CreateAccount(ctx, claim.SupervisorEmail, claim.SupervisorPassword, claim.CompanyName)
				if err != nil {
					return err
				}

				supervisorUID = uid

				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.identity.DeleteAccount(ctx, supervisorUID)
			},
		},
		{
			Name: "create business user document",
			Run: func(ctx context.Context) error {
				return s.userDAL.Create(ctx, businessUID, &userDomain.User{
					Email:          claim.BusinessEmail,
					DisplayName:    displayName,
					Role:           userDomain.RoleUser,
					ClaimRequestID: *claimID,
				})
			},
			Compensate: func(ctx context.Context) error {
				return s.userDAL.Delete(ctx, businessUID)
			},
		},
		{
			Name: "create supervisor user document",
			Run: func(ctx context.Context) error {
				return s.userDAL.Create(ctx, supervisorUID, &userDomain.User{
					Email:          claim.SupervisorEmail,
					DisplayName:    claim.CompanyName,
					Role:           userDomain.RoleUser,
					ClaimRequestID: *claimID,
					IsSupervisor:   true,
				})
			},
			Compensate: func(ctx context.Context) error {
				return s.userDAL.Delete(ctx, supervisorUID)
			},
		},
		{
			Name: "attach account ids",
			Run: func(ctx context.Context) error {
				return s.claimDAL.SetAccountIDs(ctx, *claimID, businessUID, supervisorUID)
			},
			Compensate: attachCompensate,
		},
		{
			Name: "email business credentials",
			Run: func(ctx context.Context) error {
				return s.sendCredentials(ctx, claim.BusinessEmail, claim.CompanyName, claim.BusinessPassword, claim.TrackingNumber, false)
			},
		},
		{
			Name: "email supervisor credentials",
			Run: func(ctx context.Context) error {
				return s.sendCredentials(ctx, claim.SupervisorEmail, claim.CompanyName, claim.SupervisorPassword, claim.TrackingNumber, true)
			},
		},
	}
}

func (s *ClaimService) sendCredentials(ctx context.Context, email, companyName, password, trackingNumber string, supervisor bool) error {
	link, err := s.identity.EmailVerificationLink(ctx, email)
	if err != nil {
		return err
	}

	link = identity.RewriteVerificationLink(link, common.Domain)

	msg := mailer.ClaimCredentialsMessage(email, companyName, password, link, trackingNumber)
	if supervisor {
		msg = mailer.SupervisorCredentialsMessage(email, companyName, password, link, trackingNumber)
	}

	_, err = s.mailer.Send(ctx, msg)

	return err
}
