package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	claimDALIface "github.com/r8estate/platform/claim/dal/iface"
	"github.com/r8estate/platform/claim/domain"
	"github.com/r8estate/platform/framework/connection"
)

const (
	claimCollection = "claimRequests"
)

var (
	ErrClaimNotFound = errors.New("claim request not found")
)

type ClaimFirestoreDAL struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewClaimFirestoreDAL(ctx context.Context, projectID string) (claimDALIface.IClaimFirestoreDAL, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewClaimFirestoreDALWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewClaimFirestoreDALWithClient(fun connection.FirestoreFromContextFun) *ClaimFirestoreDAL {
	return &ClaimFirestoreDAL{
		firestoreClientFun: fun,
	}
}

func (d *ClaimFirestoreDAL) claimCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(claimCollection)
}

func (d *ClaimFirestoreDAL) Get(ctx context.Context, id string) (*domain.ClaimRequest, error) {
	snap, err := d.claimCollection(ctx).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrClaimNotFound
		}

		return nil, err
	}

	var claim domain.ClaimRequest
	if err := snap.DataTo(&claim); err != nil {
		return nil, err
	}

	claim.ID = snap.Ref.ID

	return &claim, nil
}

func (d *ClaimFirestoreDAL) Create(ctx context.Context, claim *domain.ClaimRequest) (string, error) {
	now := time.Now().UTC()
	claim.CreatedAt = now
	claim.UpdatedAt = now

	ref, _, err := d.claimCollection(ctx).Add(ctx, claim)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *ClaimFirestoreDAL) Delete(ctx context.Context, id string) error {
	_, err := d.claimCollection(ctx).Doc(id).Delete(ctx)
	return err
}

func (d *ClaimFirestoreDAL) SetAccountIDs(ctx context.Context, id, userID, supervisorID string) error {
	return d.update(ctx, id, []firestore.Update{
		{Path: "userId", Value: userID},
		{Path: "supervisorId", Value: supervisorID},
	})
}

func (d *ClaimFirestoreDAL) ClearAccountIDs(ctx context.Context, id string) error {
	return d.update(ctx, id, []firestore.Update{
		{Path: "userId", Value: firestore.Delete},
		{Path: "supervisorId", Value: firestore.Delete},
	})
}

func (d *ClaimFirestoreDAL) SetPasswords(ctx context.Context, id, businessPassword, supervisorPassword string) error {
	return d.update(ctx, id, []firestore.Update{
		{Path: "businessPassword", Value: businessPassword},
		{Path: "supervisorPassword", Value: supervisorPassword},
	})
}

func (d *ClaimFirestoreDAL) SetEmailVerified(ctx context.Context, id string, supervisor bool) error {
	path := "businessEmailVerified"
	if supervisor {
		path = "supervisorEmailVerified"
	}

	return d.update(ctx, id, []firestore.Update{
		{Path: path, Value: true},
	})
}

func (d *ClaimFirestoreDAL) SetStatus(ctx context.Context, id, status string) error {
	return d.update(ctx, id, []firestore.Update{
		{Path: "status", Value: status},
	})
}

func (d *ClaimFirestoreDAL) update(ctx context.Context, id string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	_, err := d.claimCollection(ctx).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrClaimNotFound
		}

		return err
	}

	return nil
}
