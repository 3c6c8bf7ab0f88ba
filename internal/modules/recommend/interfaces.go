package recommend

import (
	"context"
	"time"

	"servicehub/internal/domain"
)

type CandidateSource interface {
	GetOfferedByCategory(ctx context.Context, categoryID int64) ([]domain.Service, error)
}

// SlotResolver reports whether a provider has at least one free slot on a
// date. Satisfied by the availability service.
type SlotResolver interface {
	HasFreeSlot(ctx context.Context, providerID int64, date time.Time) (bool, error)
}
