package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	companyDAL "github.com/r8estate/platform/company/dal"
	companyDALMocks "github.com/r8estate/platform/company/dal/mocks"
	companyDomain "github.com/r8estate/platform/company/domain"
	"github.com/r8estate/platform/logger"
	loggerMocks "github.com/r8estate/platform/logger/mocks"
	reviewDAL "github.com/r8estate/platform/review/dal"
	reviewDALMocks "github.com/r8estate/platform/review/dal/mocks"
	"github.com/r8estate/platform/review/domain"
)

type fields struct {
	reviewDAL  *reviewDALMocks.IReviewFirestoreDAL
	companyDAL *companyDALMocks.ICompanyFirestoreDAL
}

func newFields() *fields {
	return &fields{
		reviewDAL:  &reviewDALMocks.IReviewFirestoreDAL{},
		companyDAL: &companyDALMocks.ICompanyFirestoreDAL{},
	}
}

func newService(f *fields) *ReviewService {
	return &ReviewService{
		loggerProvider: func(ctx context.Context) logger.ILogger { return &loggerMocks.ILogger{} },
		reviewDAL:      f.reviewDAL,
		companyDAL:     f.companyDAL,
	}
}

func (f *fields) assertExpectations(t *testing.T) {
	f.reviewDAL.AssertExpectations(t)
	f.companyDAL.AssertExpectations(t)
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects out of range rating", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		for _, rating := range []int{0, 6, -1} {
			_, err := s.Create(ctx, &domain.CreateReviewInput{
				CompanyID: "C1",
				UserID:    "uid-1",
				Content:   "solid",
				Rating:    rating,
			})
			assert.ErrorIs(t, err, ErrInvalidRating)
		}

		f.assertExpectations(t)
	})

	t.Run("unknown company", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.companyDAL.On("Get", ctx, "C404").Return(nil, companyDAL.ErrCompanyNotFound).Once()

		_, err := s.Create(ctx, &domain.CreateReviewInput{
			CompanyID: "C404",
			UserID:    "uid-1",
			Content:   "solid",
			Rating:    4,
		})

		assert.ErrorIs(t, err, companyDAL.ErrCompanyNotFound)
		f.assertExpectations(t)
	})

	t.Run("rejects a second review from the same user", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.companyDAL.On("Get", ctx, "C1").Return(&companyDomain.Company{Name: "Acme"}, nil).Once()
		f.reviewDAL.On("GetByCompanyAndUser", ctx, "C1", "uid-1").
			Return(&domain.Review{ID: "rev-1", CompanyID: "C1", UserID: "uid-1"}, nil).Once()

		_, err := s.Create(ctx, &domain.CreateReviewInput{
			CompanyID: "C1",
			UserID:    "uid-1",
			Content:   "again",
			Rating:    3,
		})

		assert.ErrorIs(t, err, ErrAlreadyReviewed)
		f.reviewDAL.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("creates and refreshes the aggregate rating", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.companyDAL.On("Get", ctx, "C1").Return(&companyDomain.Company{Name: "Acme"}, nil).Once()
		f.reviewDAL.On("GetByCompanyAndUser", ctx, "C1", "uid-1").
			Return(nil, reviewDAL.ErrReviewNotFound).Once()
		f.reviewDAL.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.CompanyID == "C1" && r.Status == domain.StatusPublished && r.Rating == 4
		})).Return("rev-3", nil).Once()

		// Average over published reviews only: (4 + 5) / 2 = 4.5.
		f.reviewDAL.On("ListByCompany", ctx, "C1", 0).Return([]*domain.Review{
			{ID: "rev-1", Rating: 5, Status: domain.StatusPublished},
			{ID: "rev-2", Rating: 1, Status: domain.StatusRemoved},
			{ID: "rev-3", Rating: 4, Status: domain.StatusPublished},
		}, nil).Once()
		f.companyDAL.On("SetRating", ctx, "C1", 4.5, 2).Return(nil).Once()

		id, err := s.Create(ctx, &domain.CreateReviewInput{
			CompanyID: "C1",
			UserID:    "uid-1",
			Content:   "solid",
			Rating:    4,
		})

		assert.NoError(t, err)
		assert.Equal(t, "rev-3", id)
		f.assertExpectations(t)
	})
}

func TestReviewService_Reply(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	f.reviewDAL.On("Get", ctx, "rev-1").
		Return(&domain.Review{ID: "rev-1", CompanyID: "C1"}, nil).Once()
	f.reviewDAL.On("SetReply", ctx, "rev-1", mock.MatchedBy(func(r *domain.Reply) bool {
		return r.Content == "thanks" && r.RepliedBy == "uid-biz" && !r.RepliedAt.IsZero()
	})).Return(nil).Once()

	assert.NoError(t, s.Reply(ctx, "rev-1", "thanks", "uid-biz"))
	f.assertExpectations(t)
}

func TestReviewService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		assert.ErrorIs(t, s.SetStatus(ctx, "rev-1", "hidden"), ErrInvalidStatus)
		f.assertExpectations(t)
	})

	t.Run("removal refreshes the aggregate rating", func(t *testing.T) {
		f := newFields()
		s := newService(f)

		f.reviewDAL.On("Get", ctx, "rev-1").
			Return(&domain.Review{ID: "rev-1", CompanyID: "C1", Rating: 5}, nil).Once()
		f.reviewDAL.On("SetStatus", ctx, "rev-1", domain.StatusRemoved).Return(nil).Once()
		f.reviewDAL.On("ListByCompany", ctx, "C1", 0).Return([]*domain.Review{
			{ID: "rev-1", Rating: 5, Status: domain.StatusRemoved},
		}, nil).Once()
		f.companyDAL.On("SetRating", ctx, "C1", 0.0, 0).Return(nil).Once()

		assert.NoError(t, s.SetStatus(ctx, "rev-1", domain.StatusRemoved))
		f.assertExpectations(t)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	s := newService(f)

	f.reviewDAL.On("Get", ctx, "rev-1").
		Return(&domain.Review{ID: "rev-1", CompanyID: "C1", Rating: 2}, nil).Once()
	f.reviewDAL.On("Delete", ctx, "rev-1").Return(nil).Once()
	f.reviewDAL.On("ListByCompany", ctx, "C1", 0).Return([]*domain.Review{
		{ID: "rev-2", Rating: 3, Status: domain.StatusPublished},
	}, nil).Once()
	f.companyDAL.On("SetRating", ctx, "C1", 3.0, 1).Return(nil).Once()

	assert.NoError(t, s.Delete(ctx, "rev-1"))
	f.assertExpectations(t)
}
