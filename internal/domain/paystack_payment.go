package domain

import "time"

type PaystackPaymentStatus string

const (
	PaystackPaymentCreated PaystackPaymentStatus = "created"
	PaystackPaymentPaid    PaystackPaymentStatus = "paid"
)

// PaystackPayment records one initialized Paystack transaction for a booking.
type PaystackPayment struct {
	ID         int64                 `json:"id" gorm:"primaryKey"`
	BookingID  int64                 `json:"booking_id" gorm:"not null;index"`
	Reference  string                `json:"reference" gorm:"uniqueIndex;not null"`
	AmountKobo int64                 `json:"amount_kobo" gorm:"not null"`
	Email      string                `json:"email"`
	Status     PaystackPaymentStatus `json:"status" gorm:"default:created"`
	PaidAt     *time.Time            `json:"paid_at,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func (PaystackPayment) TableName() string { return "paystack_payments" }
