package recommend

import (
	"time"

	"servicehub/internal/domain"
)

// Query is the validated form of the recommendation request parameters.
type Query struct {
	CategoryID int64
	Date       time.Time
	Latitude   float64
	Longitude  float64
}

// RankedCandidate is one scored (provider, service) pair. Lower score is
// better; the response list is sorted ascending.
type RankedCandidate struct {
	Provider     *domain.Provider `json:"provider"`
	ServiceID    int64            `json:"service_id"`
	ServiceTitle string           `json:"service_title"`
	Price        float64          `json:"price"`
	DistanceKm   float64          `json:"distance_km"`
	Score        float64          `json:"score"`
}
