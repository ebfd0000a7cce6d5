package services

import (
	"taskplanner/model"

	"gorm.io/gorm"
)

func GetUserdata(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetTaskData fetches a task scoped to its owner so one user cannot read or
// touch another user's tasks.
func GetTaskData(db *gorm.DB, taskID string, userID uint) (*model.Task, error) {
	var task model.Task
	if err := db.Where("task_id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// GetOrCreateProfile returns the user's profile row, creating one with the
// default preferences on first access.
func GetOrCreateProfile(db *gorm.DB, userID uint) (*model.UserProfile, error) {
	profile := model.UserProfile{
		UserID:                int(userID),
		Timezone:              "UTC",
		Theme:                 "light",
		EmailNotifications:    true,
		SoundNotifications:    true,
		ReminderNotifications: true,
		DueDateNotifications:  true,
		DashboardLayout:       "default",
		ItemsPerPage:          10,
		DefaultPriority:       "medium",
	}
	if err := db.Where(model.UserProfile{UserID: int(userID)}).FirstOrCreate(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
