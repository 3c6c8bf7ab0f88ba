package payment

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyPaid      = errors.New("booking already paid")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrNotConfigured    = errors.New("paystack credentials are not configured")
)
