//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/r8estate/platform/report/domain"
)

type IReportService interface {
	Create(ctx context.Context, input *domain.CreateReportInput) (string, error)
	ListPending(ctx context.Context, limit int) ([]*domain.Report, error)
	Resolve(ctx context.Context, reportID, adminUID string) error
	Dismiss(ctx context.Context, reportID, adminUID string) error
}
