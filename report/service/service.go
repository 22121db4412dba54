package service

import (
	"context"
	"errors"

	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/logger"
	reportDAL "github.com/r8estate/platform/report/dal"
	reportDALIface "github.com/r8estate/platform/report/dal/iface"
	"github.com/r8estate/platform/report/domain"
	reviewDomain "github.com/r8estate/platform/review/domain"
	reviewService "github.com/r8estate/platform/review/service"
	reviewServiceIface "github.com/r8estate/platform/review/service/iface"
)

var (
	ErrReviewIDRequired = errors.New("reviewId is required")
	ErrReasonRequired   = errors.New("reason is required")
	ErrAlreadyResolved  = errors.New("report already resolved")
)

// ReportService manages reports raised against reviews. Resolving a report
// removes the offending review; dismissing keeps it published.
type ReportService struct {
	loggerProvider logger.Provider
	reportDAL      reportDALIface.IReportFirestoreDAL
	reviews        reviewServiceIface.IReviewService
}

func NewReportService(loggerProvider logger.Provider, conn *connection.Connection) *ReportService {
	return &ReportService{
		loggerProvider: loggerProvider,
		reportDAL:      reportDAL.NewReportFirestoreDALWithClient(conn.Firestore),
		reviews:        reviewService.NewReviewService(loggerProvider, conn),
	}
}

// Create files a report against a review. The company id is copied off the
// review so admin listings need no join.
func (s *ReportService) Create(ctx context.Context, input *domain.CreateReportInput) (string, error) {
	if input.ReviewID == "" {
		return "", ErrReviewIDRequired
	}

	if input.Reason == "" {
		return "", ErrReasonRequired
	}

	review, err := s.reviews.Get(ctx, input.ReviewID)
	if err != nil {
		return "", err
	}

	return s.reportDAL.Create(ctx, &domain.Report{
		ReviewID:   input.ReviewID,
		CompanyID:  review.CompanyID,
		ReporterID: input.ReporterID,
		Reason:     input.Reason,
		Details:    input.Details,
		Status:     domain.StatusPending,
	})
}

func (s *ReportService) ListPending(ctx context.Context, limit int) ([]*domain.Report, error) {
	return s.reportDAL.ListPending(ctx, limit)
}

// Resolve upholds the report: the review is removed and the report closed.
func (s *ReportService) Resolve(ctx context.Context, reportID, adminUID string) error {
	log := s.loggerProvider(ctx)

	report, err := s.pending(ctx, reportID)
	if err != nil {
		return err
	}

	if err := s.reviews.SetStatus(ctx, report.ReviewID, reviewDomain.StatusRemoved); err != nil {
		return err
	}

	if err := s.reportDAL.SetResolution(ctx, reportID, domain.StatusResolved, adminUID); err != nil {
		return err
	}

	log.Infof("report %s resolved, review %s removed", reportID, report.ReviewID)

	return nil
}

// Dismiss rejects the report and leaves the review untouched.
func (s *ReportService) Dismiss(ctx context.Context, reportID, adminUID string) error {
	if _, err := s.pending(ctx, reportID); err != nil {
		return err
	}

	return s.reportDAL.SetResolution(ctx, reportID, domain.StatusDismissed, adminUID)
}

func (s *ReportService) pending(ctx context.Context, reportID string) (*domain.Report, error) {
	report, err := s.reportDAL.Get(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if report.Status != domain.StatusPending {
		return nil, ErrAlreadyResolved
	}

	return report, nil
}
