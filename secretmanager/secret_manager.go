package secretmanager

import (
	"context"
	"fmt"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/r8estate/platform/common"
)

type SecretName string

// List of configured secrets in Secret Manager
const (
	SecretSendgrid        SecretName = "sendgrid"
	SecretFirebaseService SecretName = "firebase-service-account"
)

const (
	latestVersion = "latest"
)

var (
	state = make(map[string][]byte)
	mutex = &sync.Mutex{}
)

// AccessSecretLatestVersion returns the payload of the latest version of the
// named secret. Payloads are cached in-process for the lifetime of the service.
func AccessSecretLatestVersion(ctx context.Context, secret SecretName) ([]byte, error) {
	return AccessSecretVersion(ctx, secret, latestVersion)
}

// AccessSecretVersion returns the payload of a specific version of the named secret.
func AccessSecretVersion(ctx context.Context, secret SecretName, version string) ([]byte, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/%s", common.ProjectID, secret, version)

	mutex.Lock()
	defer mutex.Unlock()

	if data, ok := state[name]; ok {
		return data, nil
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	state[name] = result.Payload.Data

	return result.Payload.Data, nil
}
