package booking

import (
	"context"
	"time"

	"servicehub/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ExistsAt(ctx context.Context, providerID int64, scheduledTime time.Time) (bool, error)
	GetByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error)
	GetByProvider(ctx context.Context, providerID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type CustomerReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}

type ProviderReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error)
}
