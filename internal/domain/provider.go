package domain

import "time"

// Provider is a service provider profile. Latitude/Longitude are optional:
// a provider without coordinates is excluded from location-based ranking.
type Provider struct {
	ID        int64    `json:"id" gorm:"primaryKey"`
	UserID    int64    `json:"user_id" gorm:"uniqueIndex;not null"`
	Phone     string   `json:"phone"`
	Bio       string   `json:"bio" gorm:"type:text"`
	Address   string   `json:"address" gorm:"type:text"`
	Rating    float64  `json:"rating"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCoordinates reports whether the provider can take part in
// distance-based scoring.
func (p *Provider) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
