package notifier

import (
	"bytes"
	"testing"
	"time"

	"taskplanner/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore mirrors the predicates the real store runs against MySQL, over
// in-memory slices.
type fakeStore struct {
	now           time.Time
	tasks         []model.Task
	profiles      map[int]*model.UserProfile
	notifications []model.Notification
	nextID        int
}

func newFakeStore(now time.Time) *fakeStore {
	return &fakeStore{now: now, profiles: map[int]*model.UserProfile{}}
}

func (f *fakeStore) TasksDueForReminder(now time.Time) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if t.ReminderDate != nil && !t.ReminderDate.After(now) && !t.Completed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) TasksDueSoon(now, until time.Time) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if t.DueDate != nil && t.DueDate.After(now) && !t.DueDate.After(until) && !t.Completed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) TasksOverdue(now time.Time) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if t.DueDate != nil && t.DueDate.Before(now) && !t.Completed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) TasksRecentlyCompleted(since time.Time) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if t.Completed && !t.UpdatedAt.Before(since) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) NotifiedTaskIDs(kind string, since time.Time) (map[int]struct{}, error) {
	set := map[int]struct{}{}
	for _, n := range f.notifications {
		if n.Type == kind && !n.CreatedAt.Before(since) && n.TaskID != nil {
			set[*n.TaskID] = struct{}{}
		}
	}
	return set, nil
}

func (f *fakeStore) ProfileFor(userID int) (*model.UserProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeStore) CreateNotification(n *model.Notification) error {
	f.nextID++
	n.NotificationID = f.nextID
	n.CreatedAt = f.now
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeStore) addTask(t model.Task) {
	f.tasks = append(f.tasks, t)
}

func (f *fakeStore) optIn(userID int) *model.UserProfile {
	p := &model.UserProfile{
		UserID:                     userID,
		SoundNotifications:         true,
		ReminderNotifications:      true,
		DueDateNotifications:       true,
		CompletedTaskNotifications: true,
	}
	f.profiles[userID] = p
	return p
}

func timePtr(t time.Time) *time.Time { return &t }

var scanTime = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func taskOwnedBy(userID int, title string) model.Task {
	return model.Task{
		UserID: userID,
		Title:  title,
		Status: model.StatusPending,
		User:   model.User{UserID: userID, Username: "alice"},
	}
}

func TestReminderNotification(t *testing.T) {
	st := newFakeStore(scanTime)
	st.optIn(1)
	task := taskOwnedBy(1, "Water plants")
	task.TaskID = 10
	task.ReminderDate = timePtr(scanTime.Add(-5 * time.Minute))
	st.addTask(task)

	var buf bytes.Buffer
	sc := New(st)
	sc.SetOutput(&buf)

	report, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)

	e := report.Entries[0]
	assert.Equal(t, model.NotificationReminder, e.Kind)
	assert.Equal(t, "Reminder: Water plants", e.Title)
	assert.Equal(t, "Don't forget to work on: Water plants", e.Message)
	assert.Equal(t, 1, report.Created)
	assert.Contains(t, buf.String(), "Reminder notification for: Water plants (User: alice)")
	assert.Contains(t, buf.String(), "Notification check completed")
}

func TestReminderSuppressedWithinWindow(t *testing.T) {
	st := newFakeStore(scanTime)
	st.optIn(1)
	task := taskOwnedBy(1, "Water plants")
	task.TaskID = 10
	task.ReminderDate = timePtr(scanTime.Add(-5 * time.Minute))
	st.addTask(task)

	sc := New(st)
	sc.SetOutput(&bytes.Buffer{})

	first, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	require.Equal(t, 1, first.Created)

	// Same snapshot, condition still holds: the run-one notification sits
	// inside the one hour window and blocks a repeat.
	second, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Empty(t, second.Entries)
}

func TestReminderNotSentAfterCompletion(t *testing.T) {
	st := newFakeStore(scanTime)
	st.optIn(1)
	task := taskOwnedBy(1, "Water plants")
	task.TaskID = 10
	task.ReminderDate = timePtr(scanTime.Add(-5 * time.Minute))
	task.Completed = true
	task.Status = model.StatusCompleted
	task.UpdatedAt = scanTime.Add(-2 * time.Hour)
	st.addTask(task)

	sc := New(st)
	sc.SetOutput(&bytes.Buffer{})

	report, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	assert.Empty(t, report.Entries)
}

func TestDueSoonMessages(t *testing.T) {
	tests := []struct {
		name    string
		until   time.Duration
		message string
	}{
		{"thirty minutes floors to zero", 30 * time.Minute, "Task due in 0 hours"},
		{"exactly one hour", time.Hour, "Task due in 1 hour"},
		{"fifty nine minutes", 59 * time.Minute, "Task due in 0 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeStore(scanTime)
			st.optIn(1)
			task := taskOwnedBy(1, "File taxes")
			task.TaskID = 20
			task.DueDate = timePtr(scanTime.Add(tt.until))
			st.addTask(task)

			sc := New(st)
			sc.SetOutput(&bytes.Buffer{})

			report, err := sc.Run(scanTime, false)
			require.NoError(t, err)
			require.Len(t, report.Entries, 1)
			assert.Equal(t, model.NotificationDueSoon, report.Entries[0].Kind)
			assert.Equal(t, "Due Soon: File taxes", report.Entries[0].Title)
			assert.Equal(t, tt.message, report.Entries[0].Message)
		})
	}
}

func TestDueSoonExcludesAlreadyDue(t *testing.T) {
	st := newFakeStore(scanTime)
	st.optIn(1)
	task := taskOwnedBy(1, "File taxes")
	task.TaskID = 20
	task.DueDate = timePtr(scanTime) // due exactly now is overdue territory, not due-soon
	st.addTask(task)

	sc := New(st)
	sc.SetOutput(&bytes.Buffer{})

	report, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	for _, e := range report.Entries {
		assert.NotEqual(t, model.NotificationDueSoon, e.Kind)
	}
}

func TestOverdueMessages(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		message string
	}{
		{"one hour", time.Hour, "Task is 1 hour overdue"},
		{"three hours", 3*time.Hour + 20*time.Minute, "Task is 3 hours overdue"},
		{"twenty three hours", 23 * time.Hour, "Task is 23 hours overdue"},
		{"just over a day", 26 * time.Hour, "Task is 1 day overdue"},
		{"two days", 49 * time.Hour, "Task is 2 days overdue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeStore(scanTime)
			st.optIn(1)
			task := taskOwnedBy(1, "Renew passport")
			task.TaskID = 30
			task.DueDate = timePtr(scanTime.Add(-tt.elapsed))
			st.addTask(task)

			sc := New(st)
			sc.SetOutput(&bytes.Buffer{})

			report, err := sc.Run(scanTime, false)
			require.NoError(t, err)
			require.Len(t, report.Entries, 1)
			assert.Equal(t, model.NotificationOverdue, report.Entries[0].Kind)
			assert.Equal(t, "Overdue: Renew passport", report.Entries[0].Title)
			assert.Equal(t, tt.message, report.Entries[0].Message)
		})
	}
}

func TestCompletedNotification(t *testing.T) {
	st := newFakeStore(scanTime)
	st.optIn(1)
	task := taskOwnedBy(1, "Ship release")
	task.TaskID = 40
	task.Completed = true
	task.Status = model.StatusCompleted
	task.UpdatedAt = scanTime.Add(-10 * time.Minute)
	st.addTask(task)

	var buf bytes.Buffer
	sc := New(st)
	sc.SetOutput(&buf)

	report, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, model.NotificationCompleted, report.Entries[0].Kind)
	assert.Equal(t, "Task Completed: Ship release", report.Entries[0].Title)
	assert.Equal(t, "Great job! You completed: Ship release", report.Entries[0].Message)
	assert.Contains(t, buf.String(), "Completion notification for: Ship release (User: alice)")
}

func TestCompletedIgnoresOldCompletions(t *testing.T) {
	st := newFakeStore(scanTime)
	st.optIn(1)
	task := taskOwnedBy(1, "Ship release")
	task.TaskID = 40
	task.Completed = true
	task.Status = model.StatusCompleted
	task.UpdatedAt = scanTime.Add(-2 * time.Hour)
	st.addTask(task)

	sc := New(st)
	sc.SetOutput(&bytes.Buffer{})

	report, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	assert.Empty(t, report.Entries)
}

func TestDryRunWritesNothing(t *testing.T) {
	st := newFakeStore(scanTime)
	st.optIn(1)
	reminder := taskOwnedBy(1, "Water plants")
	reminder.TaskID = 10
	reminder.ReminderDate = timePtr(scanTime.Add(-5 * time.Minute))
	st.addTask(reminder)
	overdue := taskOwnedBy(1, "Renew passport")
	overdue.TaskID = 30
	overdue.DueDate = timePtr(scanTime.Add(-3 * time.Hour))
	st.addTask(overdue)

	var buf bytes.Buffer
	sc := New(st)
	sc.SetOutput(&buf)

	report, err := sc.Run(scanTime, true)
	require.NoError(t, err)
	assert.Len(t, report.Entries, 2)
	assert.Zero(t, report.Created)
	assert.Empty(t, st.notifications)
	assert.Contains(t, buf.String(), "DRY RUN - No notifications were actually sent")
	assert.NotContains(t, buf.String(), "Notification check completed")
}

func TestMissingProfileSkipsAllRoutines(t *testing.T) {
	st := newFakeStore(scanTime)
	// user 1 has no profile row at all
	reminder := taskOwnedBy(1, "Water plants")
	reminder.TaskID = 10
	reminder.ReminderDate = timePtr(scanTime.Add(-time.Hour))
	reminder.DueDate = timePtr(scanTime.Add(-time.Hour))
	st.addTask(reminder)

	sc := New(st)
	sc.SetOutput(&bytes.Buffer{})

	report, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	assert.Empty(t, report.Entries)
	assert.Empty(t, st.notifications)
}

func TestPreferenceGates(t *testing.T) {
	st := newFakeStore(scanTime)
	p := st.optIn(1)
	p.ReminderNotifications = false
	p.DueDateNotifications = false
	p.CompletedTaskNotifications = false

	reminder := taskOwnedBy(1, "Water plants")
	reminder.TaskID = 10
	reminder.ReminderDate = timePtr(scanTime.Add(-time.Minute))
	st.addTask(reminder)
	dueSoon := taskOwnedBy(1, "File taxes")
	dueSoon.TaskID = 20
	dueSoon.DueDate = timePtr(scanTime.Add(30 * time.Minute))
	st.addTask(dueSoon)
	done := taskOwnedBy(1, "Ship release")
	done.TaskID = 40
	done.Completed = true
	done.Status = model.StatusCompleted
	done.UpdatedAt = scanTime
	st.addTask(done)

	sc := New(st)
	sc.SetOutput(&bytes.Buffer{})

	report, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	assert.Empty(t, report.Entries)
}

func TestSoundFlagCopiedFromProfile(t *testing.T) {
	st := newFakeStore(scanTime)
	p := st.optIn(1)
	p.SoundNotifications = false

	task := taskOwnedBy(1, "Water plants")
	task.TaskID = 10
	task.ReminderDate = timePtr(scanTime.Add(-time.Minute))
	st.addTask(task)

	sc := New(st)
	sc.SetOutput(&bytes.Buffer{})

	_, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	require.Len(t, st.notifications, 1)
	assert.False(t, st.notifications[0].SoundEnabled)
	require.NotNil(t, st.notifications[0].TaskID)
	assert.Equal(t, 10, *st.notifications[0].TaskID)
	assert.Equal(t, 1, st.notifications[0].UserID)
}

func TestRerunAfterWindowElapsesNotifiesAgain(t *testing.T) {
	st := newFakeStore(scanTime)
	st.optIn(1)
	task := taskOwnedBy(1, "Renew passport")
	task.TaskID = 30
	task.DueDate = timePtr(scanTime.Add(-3 * time.Hour))
	st.addTask(task)

	sc := New(st)
	sc.SetOutput(&bytes.Buffer{})

	first, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	require.Equal(t, 1, first.Created)

	// 25 hours later the 24h overdue window has elapsed and the task is
	// still overdue, so a duplicate is expected (accepted behavior).
	later := scanTime.Add(25 * time.Hour)
	st.now = later
	second, err := sc.Run(later, false)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Created)
}

func TestStartLineAndSnapshotTime(t *testing.T) {
	st := newFakeStore(scanTime)

	var buf bytes.Buffer
	sc := New(st)
	sc.SetOutput(&buf)

	_, err := sc.Run(scanTime, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Starting notification check at 2025-06-10T12:00:00Z")
}
