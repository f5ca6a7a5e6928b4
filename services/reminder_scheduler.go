// services/reminder_scheduler.go - Background ticker that fires due reminders
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// ReminderScheduler polls for due reminders on a fixed interval. The only
// effect of a firing is a notification row; there is no delivery channel.
type ReminderScheduler struct {
	service  *ReminderService
	interval time.Duration
	done     chan struct{}
}

var reminderScheduler *ReminderScheduler

// InitReminderScheduler initializes the singleton scheduler.
func InitReminderScheduler(db *gorm.DB) {
	interval := 60
	if raw := os.Getenv("REMINDER_INTERVAL_SECONDS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			interval = parsed
		}
	}

	reminderScheduler = &ReminderScheduler{
		service:  NewReminderService(db),
		interval: time.Duration(interval) * time.Second,
		done:     make(chan struct{}),
	}
}

// GetReminderScheduler returns the initialized scheduler.
func GetReminderScheduler() *ReminderScheduler {
	return reminderScheduler
}

// Start runs the firing loop until Stop is called.
func (s *ReminderScheduler) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				count, err := s.service.FireDueReminders(time.Now())
				if err != nil {
					log.Printf("Reminder pass failed: %v", err)
					continue
				}
				if count > 0 {
					log.Printf("Fired %d reminder(s)", count)
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Stop ends the firing loop.
func (s *ReminderScheduler) Stop() {
	close(s.done)
}
