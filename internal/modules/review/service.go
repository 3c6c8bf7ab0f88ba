package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servicehub/internal/domain"
	"servicehub/internal/repository"
)

type Service struct {
	reviews   ReviewRepository
	bookings  BookingReader
	customers CustomerReader
	providers RatingWriter
}

func NewService(reviews ReviewRepository, bookings BookingReader, customers CustomerReader, providers RatingWriter) *Service {
	return &Service{
		reviews:   reviews,
		bookings:  bookings,
		customers: customers,
		providers: providers,
	}
}

// CreateReview lets the booking's customer rate a completed booking once,
// then refreshes the provider's average rating used by the recommender.
func (s *Service) CreateReview(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.CustomerID != customer.ID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotCompleted
	}

	rev := &domain.Review{
		BookingID:  b.ID,
		CustomerID: customer.ID,
		ProviderID: b.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	avg, err := s.reviews.AverageForProvider(ctx, b.ProviderID)
	if err != nil {
		return nil, err
	}
	if err := s.providers.UpdateRating(ctx, b.ProviderID, avg); err != nil {
		return nil, err
	}

	return rev, nil
}

func (s *Service) ListProviderReviews(ctx context.Context, providerID int64) ([]domain.Review, error) {
	return s.reviews.GetByProvider(ctx, providerID)
}
