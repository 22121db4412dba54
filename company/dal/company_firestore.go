package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	companyDALIface "github.com/r8estate/platform/company/dal/iface"
	"github.com/r8estate/platform/company/domain"
	"github.com/r8estate/platform/framework/connection"
)

const (
	companyCollection = "companies"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
)

type CompanyFirestoreDAL struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewCompanyFirestoreDAL(ctx context.Context, projectID string) (companyDALIface.ICompanyFirestoreDAL, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCompanyFirestoreDALWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewCompanyFirestoreDALWithClient(fun connection.FirestoreFromContextFun) *CompanyFirestoreDAL {
	return &CompanyFirestoreDAL{
		firestoreClientFun: fun,
	}
}

func (d *CompanyFirestoreDAL) companyCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(companyCollection)
}

func (d *CompanyFirestoreDAL) Get(ctx context.Context, id string) (*domain.Company, error) {
	snap, err := d.companyCollection(ctx).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCompanyNotFound
		}

		return nil, err
	}

	var company domain.Company
	if err := snap.DataTo(&company); err != nil {
		return nil, err
	}

	company.ID = snap.Ref.ID

	return &company, nil
}

func (d *CompanyFirestoreDAL) List(ctx context.Context, categoryID string, limit int) ([]*domain.Company, error) {
	query := d.companyCollection(ctx).Query

	if categoryID != "" {
		query = query.Where("categoryId", "==", categoryID)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	companies := make([]*domain.Company, 0, len(snaps))

	for _, snap := range snaps {
		var company domain.Company
		if err := snap.DataTo(&company); err != nil {
			return nil, err
		}

		company.ID = snap.Ref.ID

		companies = append(companies, &company)
	}

	return companies, nil
}

func (d *CompanyFirestoreDAL) Create(ctx context.Context, company *domain.Company) (string, error) {
	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now

	ref, _, err := d.companyCollection(ctx).Add(ctx, company)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *CompanyFirestoreDAL) Update(ctx context.Context, id string, company *domain.Company) error {
	company.UpdatedAt = time.Now().UTC()

	_, err := d.companyCollection(ctx).Doc(id).Set(ctx, company)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrCompanyNotFound
		}

		return err
	}

	return nil
}

func (d *CompanyFirestoreDAL) Delete(ctx context.Context, id string) error {
	_, err := d.companyCollection(ctx).Doc(id).Delete(ctx)
	return err
}

func (d *CompanyFirestoreDAL) SetClaimed(ctx context.Context, id string, claimed bool) error {
	_, err := d.companyCollection(ctx).Doc(id).Update(ctx, []firestore.Update{
		{Path: "claimed", Value: claimed},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrCompanyNotFound
		}

		return err
	}

	return nil
}

func (d *CompanyFirestoreDAL) SetRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	_, err := d.companyCollection(ctx).Doc(id).Update(ctx, []firestore.Update{
		{Path: "rating", Value: rating},
		{Path: "totalReviews", Value: totalReviews},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrCompanyNotFound
		}

		return err
	}

	return nil
}
