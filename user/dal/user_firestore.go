package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/r8estate/platform/framework/connection"
	userDALIface "github.com/r8estate/platform/user/dal/iface"
	"github.com/r8estate/platform/user/domain"
)

const (
	userCollection = "users"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserFirestoreDAL struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewUserFirestoreDAL(ctx context.Context, projectID string) (userDALIface.IUserFirestoreDAL, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewUserFirestoreDALWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewUserFirestoreDALWithClient(fun connection.FirestoreFromContextFun) *UserFirestoreDAL {
	return &UserFirestoreDAL{
		firestoreClientFun: fun,
	}
}

func (d *UserFirestoreDAL) userCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(userCollection)
}

func (d *UserFirestoreDAL) Get(ctx context.Context, uid string) (*domain.User, error) {
	snap, err := d.userCollection(ctx).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}

	user.ID = snap.Ref.ID

	return &user, nil
}

func (d *UserFirestoreDAL) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	snaps, err := d.userCollection(ctx).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	if len(snaps) == 0 {
		return nil, ErrUserNotFound
	}

	var user domain.User
	if err := snaps[0].DataTo(&user); err != nil {
		return nil, err
	}

	user.ID = snaps[0].Ref.ID

	return &user, nil
}

// Create writes the user document keyed by the auth account uid.
func (d *UserFirestoreDAL) Create(ctx context.Context, uid string, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := d.userCollection(ctx).Doc(uid).Set(ctx, user)

	return err
}

func (d *UserFirestoreDAL) Delete(ctx context.Context, uid string) error {
	_, err := d.userCollection(ctx).Doc(uid).Delete(ctx)
	return err
}

func (d *UserFirestoreDAL) SetEmail(ctx context.Context, uid, email string) error {
	return d.update(ctx, uid, []firestore.Update{
		{Path: "email", Value: email},
		{Path: "isEmailVerified", Value: false},
	})
}

func (d *UserFirestoreDAL) SetEmailVerified(ctx context.Context, uid string, verified bool) error {
	return d.update(ctx, uid, []firestore.Update{
		{Path: "isEmailVerified", Value: verified},
	})
}

// UpsertVerified creates or merges a user document with a verified email.
// Safe to call repeatedly for the same uid.
func (d *UserFirestoreDAL) UpsertVerified(ctx context.Context, uid, email, displayName string) error {
	fields := map[string]interface{}{
		"email":           email,
		"isEmailVerified": true,
		"updatedAt":       time.Now().UTC(),
	}

	if displayName != "" {
		fields["displayName"] = displayName
	}

	_, err := d.userCollection(ctx).Doc(uid).Set(ctx, fields, firestore.MergeAll)

	return err
}

func (d *UserFirestoreDAL) update(ctx context.Context, uid string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	_, err := d.userCollection(ctx).Doc(uid).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrUserNotFound
		}

		return err
	}

	return nil
}
