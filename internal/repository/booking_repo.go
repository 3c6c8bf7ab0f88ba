package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	CustomerID       int64      `gorm:"column:customer_id"`
	ServiceID        int64      `gorm:"column:service_id"`
	ProviderID       int64      `gorm:"column:provider_id"`
	ScheduledTime    time.Time  `gorm:"column:scheduled_time"`
	Status           string     `gorm:"column:status"`
	Address          *string    `gorm:"column:address"`
	IsPaid           bool       `gorm:"column:is_paid"`
	PaymentReference *string    `gorm:"column:payment_reference"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
	CancelledAt      *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var address, ref string
	if m.Address != nil {
		address = *m.Address
	}
	if m.PaymentReference != nil {
		ref = *m.PaymentReference
	}

	return &domain.Booking{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		ServiceID:        m.ServiceID,
		ProviderID:       m.ProviderID,
		ScheduledTime:    m.ScheduledTime,
		Status:           domain.BookingStatus(m.Status),
		Address:          address,
		IsPaid:           m.IsPaid,
		PaymentReference: ref,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		CancelledAt:      m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var address, ref *string
	if b.Address != "" {
		v := b.Address
		address = &v
	}
	if b.PaymentReference != "" {
		v := b.PaymentReference
		ref = &v
	}

	return bookingModel{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		ServiceID:        b.ServiceID,
		ProviderID:       b.ProviderID,
		ScheduledTime:    b.ScheduledTime,
		Status:           string(b.Status),
		Address:          address,
		IsPaid:           b.IsPaid,
		PaymentReference: ref,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		CancelledAt:      b.CancelledAt,
	}
}

// Create inserts the booking. The idx_no_double_booking partial unique
// index makes the insert the atomic arbiter under concurrency: the losing
// writer gets a unique violation (see IsUniqueViolation) and no row.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// ExistsAt reports whether a non-cancelled booking holds the exact
// (provider, timestamp) slot.
func (r *BookingRepository) ExistsAt(ctx context.Context, providerID int64, scheduledTime time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("provider_id = ? AND scheduled_time = ? AND status != ?",
			providerID, scheduledTime, string(domain.BookingCancelled)).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GetBookedTimes returns the scheduled timestamps of all non-cancelled
// bookings for the provider on the given day.
func (r *BookingRepository) GetBookedTimes(ctx context.Context, providerID int64, date time.Time) ([]time.Time, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var times []time.Time
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("provider_id = ? AND status != ? AND scheduled_time >= ? AND scheduled_time < ?",
			providerID, string(domain.BookingCancelled), dayStart, dayEnd).
		Order("scheduled_time").
		Pluck("scheduled_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *BookingRepository) GetByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("scheduled_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByProvider(ctx context.Context, providerID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("scheduled_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	updates := map[string]any{"status": string(status)}
	if status == domain.BookingCancelled {
		now := time.Now().UTC()
		updates["cancelled_at"] = &now
	}
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(updates).Error
}

func (r *BookingRepository) SetPaymentReference(ctx context.Context, bookingID int64, reference string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("payment_reference", reference).Error
}

// MarkPaidByReference flips is_paid for the booking holding the payment
// reference. Returns gorm.ErrRecordNotFound when no booking matches.
func (r *BookingRepository) MarkPaidByReference(ctx context.Context, reference string) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("payment_reference = ?", reference).
		Update("is_paid", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
