package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// CanTransitionTo encodes the booking lifecycle:
// pending -> confirmed -> completed, cancel allowed from pending/confirmed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted || next == BookingCancelled
	default:
		return false
	}
}

// Booking reserves a provider time slot for a customer. ProviderID is
// denormalized from the service so the no-double-booking index can be
// expressed on a single table.
type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	CustomerID    int64         `json:"customer_id" gorm:"not null;index"`
	ServiceID     int64         `json:"service_id" gorm:"not null;index"`
	ProviderID    int64         `json:"provider_id" gorm:"not null;index"`
	ScheduledTime time.Time     `json:"scheduled_time" gorm:"not null"`
	Status        BookingStatus `json:"status" gorm:"default:pending"`
	Address       string        `json:"address" gorm:"type:text"`

	IsPaid           bool   `json:"is_paid" gorm:"default:false"`
	PaymentReference string `json:"payment_reference,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}
