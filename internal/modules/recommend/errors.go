package recommend

import "errors"

var (
	ErrMissingParameter   = errors.New("missing required parameter")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrNoEligibleServices = errors.New("no services found for this category")
)
