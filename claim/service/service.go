package service

import (
	"context"

	claimDAL "github.com/r8estate/platform/claim/dal"
	claimDALIface "github.com/r8estate/platform/claim/dal/iface"
	"github.com/r8estate/platform/common"
	companyDAL "github.com/r8estate/platform/company/dal"
	companyDALIface "github.com/r8estate/platform/company/dal/iface"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/identity"
	identityIface "github.com/r8estate/platform/identity/iface"
	"github.com/r8estate/platform/logger"
	"github.com/r8estate/platform/mailer"
	userDAL "github.com/r8estate/platform/user/dal"
	userDALIface "github.com/r8estate/platform/user/dal/iface"
)

// ClaimService orchestrates the company claim workflow.
type ClaimService struct {
	loggerProvider logger.Provider
	identity       identityIface.Provider
	mailer         mailer.Mailer
	claimDAL       claimDALIface.IClaimFirestoreDAL
	companyDAL     companyDALIface.ICompanyFirestoreDAL
	userDAL        userDALIface.IUserFirestoreDAL
}

func NewClaimService(ctx context.Context, loggerProvider logger.Provider, conn *connection.Connection) (*ClaimService, error) {
	m, err := newMailer(ctx)
	if err != nil {
		return nil, err
	}

	return &ClaimService{
		loggerProvider: loggerProvider,
		identity:       identity.NewFirebaseProvider(conn.Auth),
		mailer:         m,
		claimDAL:       claimDAL.NewClaimFirestoreDALWithClient(conn.Firestore),
		companyDAL:     companyDAL.NewCompanyFirestoreDALWithClient(conn.Firestore),
		userDAL:        userDAL.NewUserFirestoreDALWithClient(conn.Firestore),
	}, nil
}

func newMailer(ctx context.Context) (mailer.Mailer, error) {
	if common.IsLocalhost {
		return mailer.CowardMailer{}, nil
	}

	config, err := mailer.NewConfig(ctx)
	if err != nil {
		return nil, err
	}

	return mailer.NewSendGridMailer(config), nil
}
