package review

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrForbidden           = errors.New("forbidden")
	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrAlreadyReviewed     = errors.New("booking already reviewed")
	ErrValidation          = errors.New("validation error")
)
