package model

import (
	"time"
)

type TimeEntry struct {
	TimeEntryID     int        `gorm:"column:time_entry_id;primaryKey;autoIncrement" json:"time_entry_id"`
	UserID          int        `gorm:"column:user_id;not null" json:"user_id"`
	TaskID          *int       `gorm:"column:task_id" json:"task_id"`
	StartTime       time.Time  `gorm:"column:start_time;not null" json:"start_time"`
	EndTime         *time.Time `gorm:"column:end_time" json:"end_time"`
	DurationSeconds *int64     `gorm:"column:duration_seconds" json:"duration_seconds"`
	Description     string     `gorm:"column:description;type:text" json:"description"`
	IsActive        bool       `gorm:"column:is_active;default:false;not null" json:"is_active"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relations
	User User  `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Task *Task `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
