package scheduler

import (
	"log"
	"time"

	"taskplanner/connection"
	"taskplanner/notifier"

	"github.com/robfig/cron/v3"
)

// StartScheduler runs the notification scan every minute and blocks forever.
// A failed tick is logged and dropped; the next tick retries from scratch,
// which is safe because each scan is idempotent within its dedup windows.
func StartScheduler() {
	db, err := connection.DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	scanner := notifier.New(notifier.NewGormStore(db))

	c := cron.New(cron.WithSeconds())
	_, err = c.AddFunc("0 * * * * *", func() {
		log.Println("Running scheduled notification job...")
		if _, err := scanner.Run(time.Now(), false); err != nil {
			log.Printf("Notification job failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")

	// Block forever
	select {}
}
