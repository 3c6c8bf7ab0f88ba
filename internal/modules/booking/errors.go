package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrSlotTaken               = errors.New("time slot already booked")
	ErrServiceNotFound         = errors.New("service not found")
	ErrServiceWithdrawn        = errors.New("service is withdrawn")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
