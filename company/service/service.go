package service

import (
	"context"
	"errors"

	categoryDAL "github.com/r8estate/platform/category/dal"
	categoryDALIface "github.com/r8estate/platform/category/dal/iface"
	companyDAL "github.com/r8estate/platform/company/dal"
	companyDALIface "github.com/r8estate/platform/company/dal/iface"
	"github.com/r8estate/platform/company/domain"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/logger"
)

var (
	ErrNameRequired = errors.New("company name is required")
)

type CompanyService struct {
	loggerProvider logger.Provider
	companyDAL     companyDALIface.ICompanyFirestoreDAL
	categoryDAL    categoryDALIface.ICategoryFirestoreDAL
}

func NewCompanyService(loggerProvider logger.Provider, conn *connection.Connection) *CompanyService {
	return &CompanyService{
		loggerProvider: loggerProvider,
		companyDAL:     companyDAL.NewCompanyFirestoreDALWithClient(conn.Firestore),
		categoryDAL:    categoryDAL.NewCategoryFirestoreDALWithClient(conn.Firestore),
	}
}

func (s *CompanyService) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyDAL.Get(ctx, companyID)
}

func (s *CompanyService) List(ctx context.Context, categoryID string, limit int) ([]*domain.Company, error) {
	return s.companyDAL.List(ctx, categoryID, limit)
}

// Create validates the referenced category before storing the company.
func (s *CompanyService) Create(ctx context.Context, company *domain.Company) (string, error) {
	if company.Name == "" {
		return "", ErrNameRequired
	}

	if company.CategoryID != "" {
		if _, err := s.categoryDAL.Get(ctx, company.CategoryID); err != nil {
			return "", err
		}
	}

	return s.companyDAL.Create(ctx, company)
}

func (s *CompanyService) Update(ctx context.Context, companyID string, company *domain.Company) error {
	if company.Name == "" {
		return ErrNameRequired
	}

	if company.CategoryID != "" {
		if _, err := s.categoryDAL.Get(ctx, company.CategoryID); err != nil {
			return err
		}
	}

	// Read first so a missing document surfaces as not-found rather than
	// being silently created by the write.
	if _, err := s.companyDAL.Get(ctx, companyID); err != nil {
		return err
	}

	return s.companyDAL.Update(ctx, companyID, company)
}

func (s *CompanyService) Delete(ctx context.Context, companyID string) error {
	return s.companyDAL.Delete(ctx, companyID)
}
