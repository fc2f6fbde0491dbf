package model

import "time"

// User is an account holder. Email is stored lowercase and unique.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash   string    `json:"-"`
	ProfilePicture string    `json:"profile_picture"`
	IsVerified     bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
