package domain

import "time"

// AvailabilityWindow is a provider-declared bookable interval on a date.
// Start/End are wall-clock times in "15:04" form; Date is midnight UTC.
// A window is declared capacity, not a reservation: the slot resolver
// subtracts booked start-times from the declared windows.
type AvailabilityWindow struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	ProviderID int64     `json:"provider_id" gorm:"not null;uniqueIndex:idx_provider_date_start"`
	Date       time.Time `json:"date" gorm:"not null;uniqueIndex:idx_provider_date_start"`
	StartTime  string    `json:"start_time" gorm:"not null;uniqueIndex:idx_provider_date_start"`
	EndTime    string    `json:"end_time" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (AvailabilityWindow) TableName() string { return "availability_windows" }
