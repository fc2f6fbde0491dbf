package model

import "time"

// CalendarEvent follows the FullCalendar wire format, hence the
// camelCase JSON names.
type CalendarEvent struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"-" gorm:"index"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartTime       time.Time  `json:"start" gorm:"index"`
	EndTime         *time.Time `json:"end"`
	AllDay          bool       `json:"allDay" gorm:"default:false"`
	BackgroundColor string     `json:"backgroundColor" gorm:"default:#3b82f6"`
	BorderColor     string     `json:"borderColor" gorm:"default:#1d4ed8"`
	TextColor       string     `json:"textColor" gorm:"default:#ffffff"`
	IsRecurring     bool       `json:"isRecurring" gorm:"default:false"`
	RecurrenceType  string     `json:"recurrenceType"` // daily, weekly or monthly
	RecurrenceEnd   *time.Time `json:"recurrenceEnd"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
