package service

import (
	"context"
	"errors"

	categoryDAL "github.com/r8estate/platform/category/dal"
	categoryDALIface "github.com/r8estate/platform/category/dal/iface"
	"github.com/r8estate/platform/category/domain"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/logger"
)

var (
	ErrNameRequired = errors.New("category name is required")
)

type CategoryService struct {
	loggerProvider logger.Provider
	categoryDAL    categoryDALIface.ICategoryFirestoreDAL
}

func NewCategoryService(loggerProvider logger.Provider, conn *connection.Connection) *CategoryService {
	return &CategoryService{
		loggerProvider: loggerProvider,
		categoryDAL:    categoryDAL.NewCategoryFirestoreDALWithClient(conn.Firestore),
	}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryDAL.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, category *domain.Category) (string, error) {
	if category.Name == "" {
		return "", ErrNameRequired
	}

	return s.categoryDAL.Create(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	return s.categoryDAL.Delete(ctx, categoryID)
}
