package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/r8estate/platform/framework/connection"
	reviewDALIface "github.com/r8estate/platform/review/dal/iface"
	"github.com/r8estate/platform/review/domain"
)

const (
	reviewCollection = "reviews"
)

var (
	ErrReviewNotFound = errors.New("review not found")
)

type ReviewFirestoreDAL struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewReviewFirestoreDAL(ctx context.Context, projectID string) (reviewDALIface.IReviewFirestoreDAL, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewReviewFirestoreDALWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewReviewFirestoreDALWithClient(fun connection.FirestoreFromContextFun) *ReviewFirestoreDAL {
	return &ReviewFirestoreDAL{
		firestoreClientFun: fun,
	}
}

func (d *ReviewFirestoreDAL) reviewCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(reviewCollection)
}

func (d *ReviewFirestoreDAL) Get(ctx context.Context, id string) (*domain.Review, error) {
	snap, err := d.reviewCollection(ctx).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrReviewNotFound
		}

		return nil, err
	}

	var review domain.Review
	if err := snap.DataTo(&review); err != nil {
		return nil, err
	}

	review.ID = snap.Ref.ID

	return &review, nil
}

func (d *ReviewFirestoreDAL) ListByCompany(ctx context.Context, companyID string, limit int) ([]*domain.Review, error) {
	query := d.reviewCollection(ctx).
		Where("companyId", "==", companyID).
		OrderBy("createdAt", firestore.Desc)

	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, 0, len(snaps))

	for _, snap := range snaps {
		var review domain.Review
		if err := snap.DataTo(&review); err != nil {
			return nil, err
		}

		review.ID = snap.Ref.ID

		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (d *ReviewFirestoreDAL) GetByCompanyAndUser(ctx context.Context, companyID, userID string) (*domain.Review, error) {
	snaps, err := d.reviewCollection(ctx).
		Where("companyId", "==", companyID).
		Where("userId", "==", userID).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	if len(snaps) == 0 {
		return nil, ErrReviewNotFound
	}

	var review domain.Review
	if err := snaps[0].DataTo(&review); err != nil {
		return nil, err
	}

	review.ID = snaps[0].Ref.ID

	return &review, nil
}

func (d *ReviewFirestoreDAL) Create(ctx context.Context, review *domain.Review) (string, error) {
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now

	ref, _, err := d.reviewCollection(ctx).Add(ctx, review)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *ReviewFirestoreDAL) Delete(ctx context.Context, id string) error {
	_, err := d.reviewCollection(ctx).Doc(id).Delete(ctx)
	return err
}

func (d *ReviewFirestoreDAL) SetReply(ctx context.Context, id string, reply *domain.Reply) error {
	return d.update(ctx, id, []firestore.Update{
		{Path: "reply", Value: reply},
	})
}

func (d *ReviewFirestoreDAL) SetStatus(ctx context.Context, id, status string) error {
	return d.update(ctx, id, []firestore.Update{
		{Path: "status", Value: status},
	})
}

func (d *ReviewFirestoreDAL) update(ctx context.Context, id string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	_, err := d.reviewCollection(ctx).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrReviewNotFound
		}

		return err
	}

	return nil
}
