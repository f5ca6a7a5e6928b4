// models/label.go
package models

import "time"

// Label is a global catalog entry shared across users.
type Label struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:50"`
	Color     string    `json:"color" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
}

func (Label) TableName() string {
	return "labels"
}

// TodoLabel joins todos and labels, unique per pair.
type TodoLabel struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TodoID  uint   `json:"todo_id" gorm:"not null;uniqueIndex:idx_todo_labels_pair"`
	LabelID uint   `json:"label_id" gorm:"not null;uniqueIndex:idx_todo_labels_pair"`
	Label   *Label `json:"label,omitempty" gorm:"foreignKey:LabelID"`
}

func (TodoLabel) TableName() string {
	return "todo_labels"
}
