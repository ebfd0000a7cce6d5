package model

import (
	"time"
)

const (
	NotificationReminder  = "reminder"
	NotificationDueSoon   = "due_soon"
	NotificationOverdue   = "overdue"
	NotificationCompleted = "completed"
	NotificationSystem    = "system"
)

type Notification struct {
	NotificationID int       `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
	UserID         int       `gorm:"column:user_id;not null" json:"user_id"`
	TaskID         *int      `gorm:"column:task_id" json:"task_id"`
	Type           string    `gorm:"column:type;type:enum('reminder','due_soon','overdue','completed','system');default:'system';not null" json:"type"`
	Title          string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Message        string    `gorm:"column:message;type:text;not null" json:"message"`
	IsRead         bool      `gorm:"column:is_read;default:false;not null" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	SoundEnabled   bool      `gorm:"column:sound_enabled;default:true;not null" json:"sound_enabled"`

	// Relations
	User User  `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Task *Task `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
