package availability

import (
	"context"
	"time"

	"servicehub/internal/domain"
)

type WindowRepository interface {
	Create(ctx context.Context, w *domain.AvailabilityWindow) error
	GetByProviderAndDate(ctx context.Context, providerID int64, date time.Time) ([]domain.AvailabilityWindow, error)
	GetByProvider(ctx context.Context, providerID int64) ([]domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id, providerID int64) error
}

type ProviderReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error)
}

type BookingReader interface {
	GetBookedTimes(ctx context.Context, providerID int64, date time.Time) ([]time.Time, error)
}
