// scheduler/scheduler.go
package scheduler

import (
	"context"
	"gestionforestal/services"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler runs the periodic maintenance jobs. Stop the returned cron to end them.
func StartScheduler(db *gorm.DB, schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(schedule, func() {
		PurgeSessionsJob(db)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Println("Scheduler started")
	return c, nil
}

// PurgeSessionsJob deletes sessions past their expiry.
func PurgeSessionsJob(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := services.PurgeExpiredSessions(ctx, db)
	if err != nil {
		log.Printf("Purge expired sessions failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Purged %d expired sessions", n)
	}
}
