package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/r8estate/platform/logger"
	loggerMocks "github.com/r8estate/platform/logger/mocks"
	reportDALMocks "github.com/r8estate/platform/report/dal/mocks"
	"github.com/r8estate/platform/report/domain"
	reviewDomain "github.com/r8estate/platform/review/domain"
	reviewServiceMocks "github.com/r8estate/platform/review/service/mocks"
)

type fields struct {
	reportDAL *reportDALMocks.IReportFirestoreDAL
	reviews   *reviewServiceMocks.IReviewService
}

func newFields() *fields {
	return &fields{
		reportDAL: &reportDALMocks.IReportFirestoreDAL{},
		reviews:   &reviewServiceMocks.IReviewService{},
	}
}

func newService(f *fields) *ReportService {
	return &ReportService{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			l := &loggerMocks.ILogger{}
			l.On("Infof", mock.Anything, mock.Anything, mock.Anything).Maybe()

			return l
		},
		reportDAL: f.reportDAL,
		reviews:   f.reviews,
	}
}

func (f *fields) assertExpectations(t *testing.T) {
	f.reportDAL.AssertExpectations(t)
	f.reviews.AssertExpectations(t)
}

func TestReportService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("validates input", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		_, err := s.Create(ctx, &domain.CreateReportInput{Reason: "spam"})
		assert.ErrorIs(t, err, ErrReviewIDRequired)

		_, err = s.Create(ctx, &domain.CreateReportInput{ReviewID: "rev-1"})
		assert.ErrorIs(t, err, ErrReasonRequired)

		f.assertExpectations(t)
	})

	t.Run("copies the company id off the review", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.reviews.On("Get", ctx, "rev-1").
			Return(&reviewDomain.Review{ID: "rev-1", CompanyID: "C1"}, nil).Once()
		f.reportDAL.On("Create", ctx, mock.MatchedBy(func(r *domain.Report) bool {
			return r.ReviewID == "rev-1" &&
				r.CompanyID == "C1" &&
				r.Status == domain.StatusPending
		})).Return("rep-1", nil).Once()

		id, err := s.Create(ctx, &domain.CreateReportInput{
			ReviewID:   "rev-1",
			ReporterID: "uid-1",
			Reason:     "spam",
		})

		assert.NoError(t, err)
		assert.Equal(t, "rep-1", id)
		f.assertExpectations(t)
	})
}

func TestReportService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the review and closes the report", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.reportDAL.On("Get", ctx, "rep-1").Return(&domain.Report{
			ID:       "rep-1",
			ReviewID: "rev-1",
			Status:   domain.StatusPending,
		}, nil).Once()
		f.reviews.On("SetStatus", ctx, "rev-1", reviewDomain.StatusRemoved).Return(nil).Once()
		f.reportDAL.On("SetResolution", ctx, "rep-1", domain.StatusResolved, "admin-1").Return(nil).Once()

		assert.NoError(t, s.Resolve(ctx, "rep-1", "admin-1"))
		f.assertExpectations(t)
	})

	t.Run("rejects an already handled report", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.reportDAL.On("Get", ctx, "rep-1").Return(&domain.Report{
			ID:       "rep-1",
			ReviewID: "rev-1",
			Status:   domain.StatusDismissed,
		}, nil).Once()

		assert.ErrorIs(t, s.Resolve(ctx, "rep-1", "admin-1"), ErrAlreadyResolved)
		f.reviews.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}

func TestReportService_Dismiss(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	f.reportDAL.On("Get", ctx, "rep-1").Return(&domain.Report{
		ID:       "rep-1",
		ReviewID: "rev-1",
		Status:   domain.StatusPending,
	}, nil).Once()
	f.reportDAL.On("SetResolution", ctx, "rep-1", domain.StatusDismissed, "admin-1").Return(nil).Once()

	assert.NoError(t, s.Dismiss(ctx, "rep-1", "admin-1"))
	f.reviews.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}
