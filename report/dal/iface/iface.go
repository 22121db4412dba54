//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/report/domain"
)

type IReportFirestoreDAL interface {
	Get(ctx context.Context, id string) (*domain.Report, error)
	ListPending(ctx context.Context, limit int) ([]*domain.Report, error)
	Create(ctx context.Context, report *domain.Report) (string, error)
	SetResolution(ctx context.Context, id, status, resolvedBy string) error
}
