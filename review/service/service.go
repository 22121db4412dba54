package service

import (
	"context"
	"errors"
	"math"
	"time"

	companyDAL "github.com/r8estate/platform/company/dal"
	companyDALIface "github.com/r8estate/platform/company/dal/iface"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/logger"
	reviewDAL "github.com/r8estate/platform/review/dal"
	reviewDALIface "github.com/r8estate/platform/review/dal/iface"
	"github.com/r8estate/platform/review/domain"
)

var (
	ErrCompanyIDRequired = errors.New("companyId is required")
	ErrUserIDRequired    = errors.New("userId is required")
	ErrContentRequired   = errors.New("content is required")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus     = errors.New("invalid review status")
	ErrAlreadyReviewed   = errors.New("user already reviewed this company")
)

// ReviewService manages reviews and keeps the company aggregate rating in
// step with the published set.
type ReviewService struct {
	loggerProvider logger.Provider
	reviewDAL      reviewDALIface.IReviewFirestoreDAL
	companyDAL     companyDALIface.ICompanyFirestoreDAL
}

func NewReviewService(loggerProvider logger.Provider, conn *connection.Connection) *ReviewService {
	return &ReviewService{
		loggerProvider: loggerProvider,
		reviewDAL:      reviewDAL.NewReviewFirestoreDALWithClient(conn.Firestore),
		companyDAL:     companyDAL.NewCompanyFirestoreDALWithClient(conn.Firestore),
	}
}

func (s *ReviewService) Get(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.reviewDAL.Get(ctx, reviewID)
}

func (s *ReviewService) ListByCompany(ctx context.Context, companyID string, limit int) ([]*domain.Review, error) {
	if companyID == "" {
		return nil, ErrCompanyIDRequired
	}

	return s.reviewDAL.ListByCompany(ctx, companyID, limit)
}

// Create validates and stores a review, then refreshes the company rating.
func (s *ReviewService) Create(ctx context.Context, input *domain.CreateReviewInput) (string, error) {
	switch {
	case input.CompanyID == "":
		return "", ErrCompanyIDRequired
	case input.UserID == "":
		return "", ErrUserIDRequired
	case input.Content == "":
		return "", ErrContentRequired
	case input.Rating < 1 || input.Rating > 5:
		return "", ErrInvalidRating
	}

	if _, err := s.companyDAL.Get(ctx, input.CompanyID); err != nil {
		return "", err
	}

	// One review per user per company.
	if _, err := s.reviewDAL.GetByCompanyAndUser(ctx, input.CompanyID, input.UserID); err == nil {
		return "", ErrAlreadyReviewed
	} else if !errors.Is(err, reviewDAL.ErrReviewNotFound) {
		return "", err
	}

	id, err := s.reviewDAL.Create(ctx, &domain.Review{
		CompanyID: input.CompanyID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Title:     input.Title,
		Content:   input.Content,
		Status:    domain.StatusPublished,
	})
	if err != nil {
		return "", err
	}

	if err := s.recomputeRating(ctx, input.CompanyID); err != nil {
		return "", err
	}

	return id, nil
}

// Reply attaches a company representative's answer to a review.
func (s *ReviewService) Reply(ctx context.Context, reviewID, content, repliedBy string) error {
	if content == "" {
		return ErrContentRequired
	}

	if _, err := s.reviewDAL.Get(ctx, reviewID); err != nil {
		return err
	}

	return s.reviewDAL.SetReply(ctx, reviewID, &domain.Reply{
		Content:   content,
		RepliedBy: repliedBy,
		RepliedAt: time.Now().UTC(),
	})
}

// SetStatus moves a review between published/flagged/removed and refreshes
// the company rating, since the published set may have changed.
func (s *ReviewService) SetStatus(ctx context.Context, reviewID, status string) error {
	switch status {
	case domain.StatusPublished, domain.StatusFlagged, domain.StatusRemoved:
	default:
		return ErrInvalidStatus
	}

	review, err := s.reviewDAL.Get(ctx, reviewID)
	if err != nil {
		return err
	}

	if err := s.reviewDAL.SetStatus(ctx, reviewID, status); err != nil {
		return err
	}

	return s.recomputeRating(ctx, review.CompanyID)
}

// Delete removes a review document and refreshes the company rating.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	review, err := s.reviewDAL.Get(ctx, reviewID)
	if err != nil {
		return err
	}

	if err := s.reviewDAL.Delete(ctx, reviewID); err != nil {
		return err
	}

	return s.recomputeRating(ctx, review.CompanyID)
}

// recomputeRating averages the published reviews of a company and writes the
// aggregate back onto the company document.
func (s *ReviewService) recomputeRating(ctx context.Context, companyID string) error {
	reviews, err := s.reviewDAL.ListByCompany(ctx, companyID, 0)
	if err != nil {
		return err
	}

	var total, count int

	for _, review := range reviews {
		if review.Status != domain.StatusPublished {
			continue
		}

		total += review.Rating
		count++
	}

	rating := 0.0
	if count > 0 {
		rating = math.Round(float64(total)/float64(count)*10) / 10
	}

	return s.companyDAL.SetRating(ctx, companyID, rating, count)
}
