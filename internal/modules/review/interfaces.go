package review

import (
	"context"

	"servicehub/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) error
	GetByProvider(ctx context.Context, providerID int64) ([]domain.Review, error)
	AverageForProvider(ctx context.Context, providerID int64) (float64, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type CustomerReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}

type RatingWriter interface {
	UpdateRating(ctx context.Context, providerID int64, rating float64) error
}
