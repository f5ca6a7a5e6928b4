// models/user.go
package models

import "time"

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:100"`
	Password      string    `json:"-" gorm:"not null"`
	Nickname      string    `json:"nickname" gorm:"not null;size:50"`
	IsAdmin       bool      `json:"is_admin" gorm:"default:false"`
	ProfileImgURL string    `json:"profile_img_url"`
	APIKey        string    `json:"-" gorm:"uniqueIndex;not null;size:64"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
