package model

import "time"

// Goal is a measurable objective with manual progress tracking.
// Reaching 100% while active flips the status to completed.
type Goal struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"-" gorm:"index"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	Priority    string     `json:"priority" gorm:"default:medium"` // low, medium or high
	Status      string     `json:"status" gorm:"default:active"`   // active, completed or cancelled
	Progress    int        `json:"progress" gorm:"default:0"`      // 0..100
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
