package domain

import "time"

type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Category) TableName() string { return "categories" }

// Service is an offer published by a provider in a category.
// IsAvailable=false means the service is withdrawn: it must never
// surface in recommendations.
type Service struct {
	ID              int64   `json:"id" gorm:"primaryKey"`
	ProviderID      int64   `json:"provider_id" gorm:"not null;index"`
	CategoryID      int64   `json:"category_id" gorm:"not null;index"`
	Title           string  `json:"title" gorm:"not null"`
	Description     string  `json:"description" gorm:"type:text"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes"`
	IsAvailable     bool    `json:"is_available" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Provider *Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}
