package model

import (
	"time"
)

// UserProfile holds per-user settings, including the notification preference
// gates consulted by the notifier. At most one row exists per user; a user
// without a row receives no notifications at all.
type UserProfile struct {
	ProfileID int    `gorm:"column:profile_id;primaryKey;autoIncrement" json:"profile_id"`
	UserID    int    `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Bio       string `gorm:"column:bio;type:varchar(500)" json:"bio"`
	Timezone  string `gorm:"column:timezone;type:varchar(50);default:'UTC';not null" json:"timezone"`
	Theme     string `gorm:"column:theme;type:enum('light','dark','auto');default:'light';not null" json:"theme"`

	// Notification preferences
	EmailNotifications         bool `gorm:"column:email_notifications;default:true;not null" json:"email_notifications"`
	SoundNotifications         bool `gorm:"column:sound_notifications;default:true;not null" json:"sound_notifications"`
	ReminderNotifications      bool `gorm:"column:reminder_notifications;default:true;not null" json:"reminder_notifications"`
	DueDateNotifications       bool `gorm:"column:due_date_notifications;default:true;not null" json:"due_date_notifications"`
	CompletedTaskNotifications bool `gorm:"column:completed_task_notifications;default:false;not null" json:"completed_task_notifications"`

	// Dashboard preferences
	DashboardLayout string `gorm:"column:dashboard_layout;type:varchar(20);default:'default';not null" json:"dashboard_layout"`
	ItemsPerPage    int    `gorm:"column:items_per_page;default:10;not null" json:"items_per_page"`
	DefaultPriority string `gorm:"column:default_priority;type:varchar(10);default:'medium';not null" json:"default_priority"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
