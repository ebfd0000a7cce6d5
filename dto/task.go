package dto

import "time"

type CreateTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
	ReminderDate *time.Time `json:"reminder_date"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category     string     `json:"category"`
}

type UpdateTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
	ReminderDate *time.Time `json:"reminder_date"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category     string     `json:"category"`
	Status       string     `json:"status" binding:"required,oneof=pending in_progress completed"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}
