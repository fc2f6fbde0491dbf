package model

import "time"

// MoodLevels maps each recognized mood category to the numeric level
// recorded when the client does not supply one.
var MoodLevels = map[string]int{
	"Happy":      9,
	"Neutral":    6,
	"Sad":        3,
	"Angry":      2,
	"Tired":      4,
	"Stressed":   2,
	"Excited":    8,
	"Anxious":    3,
	"Calm":       7,
	"Frustrated": 2,
}

// ValidMood reports whether mood is one of the recognized categories.
func ValidMood(mood string) bool {
	_, ok := MoodLevels[mood]
	return ok
}

// MoodEntry records how the user felt at a point in time. Creation is
// an upsert per calendar day; the table may still hold several rows
// for one day (edits, imports) and readers must tolerate that.
type MoodEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"index"`
	Mood      string    `json:"mood"`
	MoodLevel int       `json:"mood_level"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
