// models/team.go
package models

import "time"

type Team struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null;size:100"`
	Description string       `json:"description" gorm:"type:text"`
	Members     []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}
