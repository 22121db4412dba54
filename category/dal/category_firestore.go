package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	categoryDALIface "github.com/r8estate/platform/category/dal/iface"
	"github.com/r8estate/platform/category/domain"
	"github.com/r8estate/platform/framework/connection"
)

const (
	categoryCollection = "categories"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

type CategoryFirestoreDAL struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewCategoryFirestoreDAL(ctx context.Context, projectID string) (categoryDALIface.ICategoryFirestoreDAL, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCategoryFirestoreDALWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewCategoryFirestoreDALWithClient(fun connection.FirestoreFromContextFun) *CategoryFirestoreDAL {
	return &CategoryFirestoreDAL{
		firestoreClientFun: fun,
	}
}

func (d *CategoryFirestoreDAL) categoryCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(categoryCollection)
}

func (d *CategoryFirestoreDAL) Get(ctx context.Context, id string) (*domain.Category, error) {
	snap, err := d.categoryCollection(ctx).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	var category domain.Category
	if err := snap.DataTo(&category); err != nil {
		return nil, err
	}

	category.ID = snap.Ref.ID

	return &category, nil
}

func (d *CategoryFirestoreDAL) List(ctx context.Context) ([]*domain.Category, error) {
	snaps, err := d.categoryCollection(ctx).
		OrderBy("name", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(snaps))

	for _, snap := range snaps {
		var category domain.Category
		if err := snap.DataTo(&category); err != nil {
			return nil, err
		}

		category.ID = snap.Ref.ID

		categories = append(categories, &category)
	}

	return categories, nil
}

func (d *CategoryFirestoreDAL) Create(ctx context.Context, category *domain.Category) (string, error) {
	category.CreatedAt = time.Now().UTC()

	ref, _, err := d.categoryCollection(ctx).Add(ctx, category)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *CategoryFirestoreDAL) Delete(ctx context.Context, id string) error {
	_, err := d.categoryCollection(ctx).Doc(id).Delete(ctx)
	return err
}
