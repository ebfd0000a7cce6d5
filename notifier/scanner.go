// Package notifier implements the scheduled notification scan: it inspects
// tasks for elapsed reminders, approaching and elapsed due dates, and recent
// completions, and records a notification for each hit unless one of the same
// kind was already recorded inside the kind's cool-down window.
package notifier

import (
	"fmt"
	"io"
	"os"
	"time"

	"taskplanner/model"
)

// Scanner runs the four notification checks against a single time snapshot.
type Scanner struct {
	store Store
	out   io.Writer
}

func New(store Store) *Scanner {
	return &Scanner{store: store, out: os.Stdout}
}

// SetOutput redirects the progress lines, which otherwise go to stdout.
func (s *Scanner) SetOutput(w io.Writer) {
	s.out = w
}

// Entry describes one notification that was (or in dry-run mode, would have
// been) created.
type Entry struct {
	Kind    string
	TaskID  int
	UserID  int
	Title   string
	Message string
}

type Report struct {
	DryRun  bool
	Entries []Entry
	Created int
}

// rule captures the shared shape of one check: candidate selection, a dedup
// cool-down window, a per-user preference gate, and the message to build.
type rule struct {
	kind       string
	label      string
	window     time.Duration
	candidates func(st Store, now time.Time) ([]model.Task, error)
	allowed    func(p *model.UserProfile) bool
	message    func(t model.Task, now time.Time) (title, message string)
}

func rules() []rule {
	return []rule{
		{
			kind:   model.NotificationReminder,
			label:  "Reminder",
			window: time.Hour,
			candidates: func(st Store, now time.Time) ([]model.Task, error) {
				return st.TasksDueForReminder(now)
			},
			allowed: func(p *model.UserProfile) bool { return p.ReminderNotifications },
			message: func(t model.Task, now time.Time) (string, string) {
				return fmt.Sprintf("Reminder: %s", t.Title),
					fmt.Sprintf("Don't forget to work on: %s", t.Title)
			},
		},
		{
			kind:   model.NotificationDueSoon,
			label:  "Due soon",
			window: 2 * time.Hour,
			candidates: func(st Store, now time.Time) ([]model.Task, error) {
				return st.TasksDueSoon(now, now.Add(time.Hour))
			},
			allowed: func(p *model.UserProfile) bool { return p.DueDateNotifications },
			message: func(t model.Task, now time.Time) (string, string) {
				hours := int(t.DueDate.Sub(now) / time.Hour)
				return fmt.Sprintf("Due Soon: %s", t.Title),
					fmt.Sprintf("Task due in %d hour%s", hours, plural(hours))
			},
		},
		{
			kind:   model.NotificationOverdue,
			label:  "Overdue",
			window: 24 * time.Hour,
			candidates: func(st Store, now time.Time) ([]model.Task, error) {
				return st.TasksOverdue(now)
			},
			allowed: func(p *model.UserProfile) bool { return p.DueDateNotifications },
			message: func(t model.Task, now time.Time) (string, string) {
				totalHours := int(now.Sub(*t.DueDate) / time.Hour)
				days := totalHours / 24
				title := fmt.Sprintf("Overdue: %s", t.Title)
				if days > 0 {
					return title, fmt.Sprintf("Task is %d day%s overdue", days, plural(days))
				}
				hours := totalHours % 24
				return title, fmt.Sprintf("Task is %d hour%s overdue", hours, plural(hours))
			},
		},
		{
			kind:   model.NotificationCompleted,
			label:  "Completion",
			window: time.Hour,
			candidates: func(st Store, now time.Time) ([]model.Task, error) {
				return st.TasksRecentlyCompleted(now.Add(-time.Hour))
			},
			allowed: func(p *model.UserProfile) bool { return p.CompletedTaskNotifications },
			message: func(t model.Task, now time.Time) (string, string) {
				return fmt.Sprintf("Task Completed: %s", t.Title),
					fmt.Sprintf("Great job! You completed: %s", t.Title)
			},
		},
	}
}

// Run executes all four checks against the given time snapshot. In dry-run
// mode every query and report line happens as usual but nothing is written.
// Store errors abort the run; a later scheduled run picks up where this one
// left off since each check is idempotent within its cool-down window.
func (s *Scanner) Run(now time.Time, dryRun bool) (*Report, error) {
	fmt.Fprintf(s.out, "Starting notification check at %s\n", now.Format(time.RFC3339))

	report := &Report{DryRun: dryRun}
	for _, r := range rules() {
		if err := s.runRule(r, now, dryRun, report); err != nil {
			return nil, err
		}
	}

	if dryRun {
		fmt.Fprintln(s.out, "DRY RUN - No notifications were actually sent")
	} else {
		fmt.Fprintln(s.out, "Notification check completed")
	}
	return report, nil
}

func (s *Scanner) runRule(r rule, now time.Time, dryRun bool, report *Report) error {
	tasks, err := r.candidates(s.store, now)
	if err != nil {
		return fmt.Errorf("%s candidates: %w", r.kind, err)
	}
	notified, err := s.store.NotifiedTaskIDs(r.kind, now.Add(-r.window))
	if err != nil {
		return fmt.Errorf("%s dedup query: %w", r.kind, err)
	}

	for _, task := range tasks {
		if _, ok := notified[task.TaskID]; ok {
			continue
		}
		profile, err := s.store.ProfileFor(task.UserID)
		if err != nil {
			return fmt.Errorf("profile for user %d: %w", task.UserID, err)
		}
		// No profile row means the user never opted in to anything.
		if profile == nil || !r.allowed(profile) {
			continue
		}

		title, message := r.message(task, now)
		if !dryRun {
			taskID := task.TaskID
			n := &model.Notification{
				UserID:       task.UserID,
				TaskID:       &taskID,
				Type:         r.kind,
				Title:        title,
				Message:      message,
				SoundEnabled: profile.SoundNotifications,
			}
			if err := s.store.CreateNotification(n); err != nil {
				return fmt.Errorf("create %s notification for task %d: %w", r.kind, task.TaskID, err)
			}
			report.Created++
		}

		fmt.Fprintf(s.out, "%s notification for: %s (User: %s)\n", r.label, task.Title, task.User.Username)
		report.Entries = append(report.Entries, Entry{
			Kind:    r.kind,
			TaskID:  task.TaskID,
			UserID:  task.UserID,
			Title:   title,
			Message: message,
		})
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
