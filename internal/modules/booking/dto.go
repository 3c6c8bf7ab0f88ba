package booking

import "time"

type CreateBookingRequest struct {
	ServiceID     int64     `json:"service_id" binding:"required"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
	Address       string    `json:"address"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
