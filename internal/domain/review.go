package domain

import "time"

// Review feeds the provider rating used by the recommendation scorer.
type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	BookingID  int64     `json:"booking_id" gorm:"uniqueIndex;not null"`
	CustomerID int64     `json:"customer_id" gorm:"not null;index"`
	ProviderID int64     `json:"provider_id" gorm:"not null;index"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string    `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
