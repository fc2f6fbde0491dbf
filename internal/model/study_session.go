package model

import "time"

// StudySession is one completed block of study time, in minutes.
type StudySession struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"index"`
	Duration    int       `json:"duration"` // minutes
	Subject     *string   `json:"subject"`
	Notes       string    `json:"notes"`
	SessionType string    `json:"session_type" gorm:"default:pomodoro"` // pomodoro, focused or break
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
