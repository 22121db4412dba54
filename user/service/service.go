package service

import (
	"context"

	claimDAL "github.com/r8estate/platform/claim/dal"
	claimDALIface "github.com/r8estate/platform/claim/dal/iface"
	"github.com/r8estate/platform/common"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/identity"
	identityIface "github.com/r8estate/platform/identity/iface"
	"github.com/r8estate/platform/logger"
	"github.com/r8estate/platform/mailer"
	userDAL "github.com/r8estate/platform/user/dal"
	userDALIface "github.com/r8estate/platform/user/dal/iface"
)

// UserService covers account management and the transactional email
// operations acting on a single account.
type UserService struct {
	loggerProvider logger.Provider
	identity       identityIface.Provider
	mailer         mailer.Mailer
	userDAL        userDALIface.IUserFirestoreDAL
	claimDAL       claimDALIface.IClaimFirestoreDAL
}

func NewUserService(ctx context.Context, loggerProvider logger.Provider, conn *connection.Connection) (*UserService, error) {
	m, err := newMailer(ctx)
	if err != nil {
		return nil, err
	}

	return &UserService{
		loggerProvider: loggerProvider,
		identity:       identity.NewFirebaseProvider(conn.Auth),
		mailer:         m,
		userDAL:        userDAL.NewUserFirestoreDALWithClient(conn.Firestore),
		claimDAL:       claimDAL.NewClaimFirestoreDALWithClient(conn.Firestore),
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
