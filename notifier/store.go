package notifier

import (
	"time"

	"taskplanner/model"
)

// Store is the slice of persistence the scanner needs. Candidate queries
// return tasks with their owning User loaded so report lines can name the
// user without extra lookups.
type Store interface {
	// reminder_date <= now, not completed
	TasksDueForReminder(now time.Time) ([]model.Task, error)
	// now < due_date <= until, not completed
	TasksDueSoon(now, until time.Time) ([]model.Task, error)
	// due_date < now, not completed
	TasksOverdue(now time.Time) ([]model.Task, error)
	// completed, updated_at >= since
	TasksRecentlyCompleted(since time.Time) ([]model.Task, error)

	// NotifiedTaskIDs returns the IDs of tasks that already received a
	// notification of the given kind since the given instant.
	NotifiedTaskIDs(kind string, since time.Time) (map[int]struct{}, error)

	// ProfileFor returns (nil, nil) when the user has no profile row.
	ProfileFor(userID int) (*model.UserProfile, error)

	CreateNotification(n *model.Notification) error
}
