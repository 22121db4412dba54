package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/r8estate/platform/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"

	// CtxAuthKey is how firebase auth connections are stored/retrieved.
	CtxAuthKey = "app-firebase-auth"
)

type Connection struct {
	*FirestoreClient
	*FirebaseClient
}

// NewConnection initializes the external service clients necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	fb, err := NewFirebase(ctx, log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		fb,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// Auth returns a firebase auth connection that was stored in context.
// it returns by default the auth connection, if there was not on context.
func (c *Connection) Auth(ctx context.Context) *auth.Client {
	if ac, ok := ctx.Value(CtxAuthKey).(*auth.Client); ok {
		return ac
	}

	return c.authClient
}

// FirestoreWithContext stores under gin context, a firestore connection.
func (c *Connection) FirestoreWithContext(ctx *gin.Context) {
	ctx.Set(CtxFirestoreKey, c.fs)
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
type AuthFromContextFun = func(ctx context.Context) *auth.Client
