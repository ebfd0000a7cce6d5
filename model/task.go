package model

import (
	"time"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Task struct {
	TaskID       int        `gorm:"column:task_id;primaryKey;autoIncrement" json:"task_id"`
	UserID       int        `gorm:"column:user_id;not null" json:"user_id"`
	Title        string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description  string     `gorm:"column:description;type:text" json:"description"`
	DueDate      *time.Time `gorm:"column:due_date" json:"due_date"`
	ReminderDate *time.Time `gorm:"column:reminder_date" json:"reminder_date"`
	Completed    bool       `gorm:"column:completed;default:false;not null" json:"completed"`
	Status       string     `gorm:"column:status;type:enum('pending','in_progress','completed');default:'pending';not null" json:"status"`
	Priority     string     `gorm:"column:priority;type:enum('low','medium','high');default:'medium';not null" json:"priority"`
	Category     string     `gorm:"column:category;type:varchar(100)" json:"category"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task has an elapsed due date and is still open.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.Completed
}
