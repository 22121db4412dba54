package connection

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/r8estate/platform/common"
	"github.com/r8estate/platform/logger"
	"github.com/r8estate/platform/secretmanager"
)

var (
	ErrFirebaseInitialization = errors.New("firebase initialization error")
)

type FirebaseClient struct {
	app        *firebase.App
	authClient *auth.Client
}

// NewFirebase constructs the firebase admin app and its auth client.
// On localhost a service account secret is used; on GCP the app relies
// on application default credentials.
func NewFirebase(ctx context.Context, log *logger.Logging) (*FirebaseClient, error) {
	logger := log.Logger(ctx)

	var opts []option.ClientOption

	if common.IsLocalhost {
		data, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretFirebaseService)
		if err == nil {
			opts = append(opts, option.WithCredentialsJSON(data))
		}
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID}, opts...)
	if err != nil {
		logger.Errorf("%s: %s", ErrFirebaseInitialization, err)
		return nil, ErrFirebaseInitialization
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		logger.Errorf("%s: %s", ErrFirebaseInitialization, err)
		return nil, ErrFirebaseInitialization
	}

	return &FirebaseClient{
		app:        app,
		authClient: authClient,
	}, nil
}
