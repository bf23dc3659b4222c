package model

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	IsFaculty   bool      `json:"is_faculty"`
	IsRecruiter bool      `json:"is_recruiter"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	DateJoined  time.Time `gorm:"autoCreateTime" json:"date_joined"`
}

func (u *User) TableName() string {
	return "users"
}
