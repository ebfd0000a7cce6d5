package dto

import "time"

type CreateTimeEntryRequest struct {
	TaskID      *int       `json:"task_id"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     *time.Time `json:"end_time"`
	Description string     `json:"description"`
}

type StartTrackingRequest struct {
	TaskID *int `json:"task_id"`
}
