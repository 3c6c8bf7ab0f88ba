package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"servicehub/internal/domain"
	"servicehub/internal/repository"
)

type Service struct {
	bookings  BookingRepository
	services  ServiceReader
	customers CustomerReader
	providers ProviderReader
	guard     *slotGuard
}

func NewService(bookings BookingRepository, services ServiceReader, customers CustomerReader, providers ProviderReader) *Service {
	return &Service{
		bookings:  bookings,
		services:  services,
		customers: customers,
		providers: providers,
		guard:     newSlotGuard(),
	}
}

// CreateBooking claims the (provider, scheduled time) slot for the customer
// behind userID. The existence check and the insert run inside the slot
// guard's critical section; a concurrent loser gets ErrSlotTaken and no
// booking row regardless of which layer (check or unique index) rejects it.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.IsAvailable {
		return nil, ErrServiceWithdrawn
	}

	scheduled := req.ScheduledTime.UTC().Truncate(time.Minute)
	if scheduled.Before(time.Now().UTC()) {
		return nil, ErrValidation
	}

	unlock := s.guard.lock(svc.ProviderID, scheduled)
	defer unlock()

	taken, err := s.bookings.ExistsAt(ctx, svc.ProviderID, scheduled)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	b := &domain.Booking{
		CustomerID:    customer.ID,
		ServiceID:     svc.ID,
		ProviderID:    svc.ProviderID,
		ScheduledTime: scheduled,
		Status:        domain.BookingPending,
		Address:       req.Address,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, role string, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	switch domain.Role(role) {
	case domain.RoleCustomer:
		customer, err := s.customers.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrForbidden
			}
			return nil, err
		}
		return s.bookings.GetByCustomer(ctx, customer.ID, limit, offset)
	case domain.RoleProvider:
		provider, err := s.providers.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrForbidden
			}
			return nil, err
		}
		return s.bookings.GetByProvider(ctx, provider.ID, limit, offset)
	default:
		return nil, ErrForbidden
	}
}

// UpdateStatus moves a booking along pending -> confirmed -> completed.
// Only the provider owning the booking may do this.
func (s *Service) UpdateStatus(ctx context.Context, userID int64, bookingID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if newStatus != domain.BookingConfirmed && newStatus != domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	provider, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.ProviderID != provider.ID {
		return nil, ErrForbidden
	}
	if !b.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// Cancel is allowed for the booking's customer or its provider while the
// booking is pending or confirmed.
func (s *Service) Cancel(ctx context.Context, userID int64, role string, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	owns, err := s.actorOwnsBooking(ctx, userID, role, b)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, ErrForbidden
	}

	if !b.Status.CanTransitionTo(domain.BookingCancelled) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) actorOwnsBooking(ctx context.Context, userID int64, role string, b *domain.Booking) (bool, error) {
	switch domain.Role(role) {
	case domain.RoleCustomer:
		customer, err := s.customers.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return customer.ID == b.CustomerID, nil
	case domain.RoleProvider:
		provider, err := s.providers.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return provider.ID == b.ProviderID, nil
	default:
		return false, nil
	}
}
