package availability

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"servicehub/internal/domain"
	"servicehub/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	windows   WindowRepository
	providers ProviderReader
	bookings  BookingReader
}

func NewService(windows WindowRepository, providers ProviderReader, bookings BookingReader) *Service {
	return &Service{
		windows:   windows,
		providers: providers,
		bookings:  bookings,
	}
}

// DeclareWindow records a bookable window for the provider owned by userID.
// Declared (date, start) pairs are unique per provider; the schema index
// is the arbiter and duplicates surface as ErrDuplicateWindow.
func (s *Service) DeclareWindow(ctx context.Context, userID int64, req DeclareWindowRequest) (*domain.AvailabilityWindow, error) {
	provider, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	start, err := time.Parse(timeLayout, req.StartTime)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse(timeLayout, req.EndTime)
	if err != nil {
		return nil, ErrValidation
	}
	if !end.After(start) {
		return nil, ErrValidation
	}

	w := &domain.AvailabilityWindow{
		ProviderID: provider.ID,
		Date:       date.UTC(),
		StartTime:  start.Format(timeLayout),
		EndTime:    end.Format(timeLayout),
	}

	if err := s.windows.Create(ctx, w); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateWindow
		}
		return nil, err
	}

	return w, nil
}

// ListOwnWindows lists the provider's declared windows, optionally
// narrowed to one date. dateStr empty means all dates.
func (s *Service) ListOwnWindows(ctx context.Context, userID int64, dateStr string) ([]domain.AvailabilityWindow, error) {
	provider, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	if dateStr == "" {
		return s.windows.GetByProvider(ctx, provider.ID)
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return s.windows.GetByProviderAndDate(ctx, provider.ID, date.UTC())
}

func (s *Service) DeleteWindow(ctx context.Context, userID, windowID int64) error {
	provider, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProviderNotFound
		}
		return err
	}

	if err := s.windows.Delete(ctx, windowID, provider.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWindowNotFound
		}
		return err
	}
	return nil
}

// FreeSlots resolves the bookable slots for a provider on a date: every
// declared window whose start-time has no non-cancelled booking at that
// exact timestamp, ascending by start. A provider with no windows yields
// an empty list, not an error. Slot granularity is the declared window
// start; service duration does not shrink availability.
func (s *Service) FreeSlots(ctx context.Context, providerID int64, dateStr string) ([]Slot, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.providers.GetByID(ctx, providerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	return s.resolve(ctx, providerID, date.UTC())
}

// HasFreeSlot reports whether resolve(provider, date) is non-empty. The
// recommendation scorer composes with the resolver through this.
func (s *Service) HasFreeSlot(ctx context.Context, providerID int64, date time.Time) (bool, error) {
	slots, err := s.resolve(ctx, providerID, date.UTC())
	if err != nil {
		return false, err
	}
	return len(slots) > 0, nil
}

func (s *Service) resolve(ctx context.Context, providerID int64, date time.Time) ([]Slot, error) {
	windows, err := s.windows.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	bookedTimes, err := s.bookings.GetBookedTimes(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t.UTC().Format(timeLayout)] = struct{}{}
	}

	// windows arrive ordered by start_time; HH:MM sorts lexicographically
	out := make([]Slot, 0, len(windows))
	for _, w := range windows {
		if _, taken := booked[w.StartTime]; taken {
			continue
		}
		out = append(out, Slot{
			WindowID:  w.ID,
			Date:      w.Date.Format(dateLayout),
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}
	return out, nil
}
