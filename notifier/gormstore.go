package notifier

import (
	"errors"
	"time"

	"taskplanner/model"

	"gorm.io/gorm"
)

// GormStore implements Store on top of the application database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) TasksDueForReminder(now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.Preload("User").
		Where("reminder_date <= ? AND completed = ?", now, false).
		Find(&tasks).Error
	return tasks, err
}

func (s *GormStore) TasksDueSoon(now, until time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.Preload("User").
		Where("due_date > ? AND due_date <= ? AND completed = ?", now, until, false).
		Find(&tasks).Error
	return tasks, err
}

func (s *GormStore) TasksOverdue(now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.Preload("User").
		Where("due_date < ? AND completed = ?", now, false).
		Find(&tasks).Error
	return tasks, err
}

func (s *GormStore) TasksRecentlyCompleted(since time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.Preload("User").
		Where("completed = ? AND updated_at >= ?", true, since).
		Find(&tasks).Error
	return tasks, err
}

func (s *GormStore) NotifiedTaskIDs(kind string, since time.Time) (map[int]struct{}, error) {
	var ids []int
	err := s.db.Model(&model.Notification{}).
		Where("type = ? AND created_at >= ? AND task_id IS NOT NULL", kind, since).
		Pluck("task_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (s *GormStore) ProfileFor(userID int) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *GormStore) CreateNotification(n *model.Notification) error {
	return s.db.Create(n).Error
}
