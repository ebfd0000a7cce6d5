package dto

// UpdateProfileRequest uses pointers so that omitted fields leave the stored
// value untouched.
type UpdateProfileRequest struct {
	Bio      *string `json:"bio"`
	Timezone *string `json:"timezone"`
	Theme    *string `json:"theme" binding:"omitempty,oneof=light dark auto"`

	EmailNotifications         *bool `json:"email_notifications"`
	SoundNotifications         *bool `json:"sound_notifications"`
	ReminderNotifications      *bool `json:"reminder_notifications"`
	DueDateNotifications       *bool `json:"due_date_notifications"`
	CompletedTaskNotifications *bool `json:"completed_task_notifications"`

	DashboardLayout *string `json:"dashboard_layout"`
	ItemsPerPage    *int    `json:"items_per_page"`
	DefaultPriority *string `json:"default_priority" binding:"omitempty,oneof=low medium high"`
}
