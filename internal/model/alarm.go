package model

import (
	"time"

	"gorm.io/datatypes"
)

// Alarm is a wall-clock reminder. Time is "HH:MM" and DaysOfWeek
// holds weekday numbers with Monday as 0; an empty set means the
// alarm fires once, today, if its time has not passed yet.
type Alarm struct {
	ID         uint                     `json:"id" gorm:"primaryKey"`
	UserID     uint                     `json:"-" gorm:"index"`
	Title      string                   `json:"title"`
	Time       string                   `json:"time"`
	DaysOfWeek datatypes.JSONSlice[int] `json:"days_of_week"`
	IsActive   bool                     `json:"is_active" gorm:"default:true"`
	Sound      string                   `json:"sound" gorm:"default:default"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}
