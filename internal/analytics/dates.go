package analytics

import (
	"math"
	"time"
)

// DayOf truncates t to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats the calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeekdayIndex numbers weekdays with Monday as 0 and Sunday as 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.UTC().Weekday()) + 6) % 7
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayName returns the English name for a Monday-based weekday index.
func WeekdayName(idx int) string {
	if idx < 0 || idx >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[idx]
}

// WeekOf returns the ISO week number of t.
func WeekOf(t time.Time) int {
	_, week := t.UTC().ISOWeek()
	return week
}

// StartOfWeek returns Monday 00:00 UTC of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	return DayOf(t).AddDate(0, 0, -WeekdayIndex(t))
}

// StartOfMonth returns the first day of the month containing t, 00:00 UTC.
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
