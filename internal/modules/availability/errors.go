package availability

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidDate      = errors.New("invalid date")
	ErrProviderNotFound = errors.New("provider not found")
	ErrDuplicateWindow  = errors.New("window already declared for this start time")
	ErrWindowNotFound   = errors.New("window not found")
)
