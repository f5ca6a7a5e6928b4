// models/reminder.go
package models

import "time"

// Reminder schedules a notification for a todo. Fired is flipped in the
// same transaction that creates the notification, so each reminder emits
// at most once per firing pass.
type Reminder struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	TodoID   uint      `json:"todo_id" gorm:"not null;index"`
	Todo     *Todo     `json:"todo,omitempty" gorm:"foreignKey:TodoID"`
	RemindAt time.Time `json:"remind_at" gorm:"not null;index"`
	Method   string    `json:"method" gorm:"size:50"`
	Fired    bool      `json:"fired" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}
