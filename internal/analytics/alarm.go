package analytics

import (
	"fmt"
	"sort"
	"time"

	"studydesk/internal/model"
)

// Occurrence is the resolved next firing of an alarm.
type Occurrence struct {
	DaysAhead int
	Minutes   int // time of day, minutes since midnight
	Label     string
}

// ParseClock parses a wall-clock "HH:MM" value into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// NextOccurrence resolves when alarm next fires relative to now. The
// second return is false when the alarm is inactive, its time is
// malformed, or it is a one-shot whose time already passed today.
// Weekdays are Monday-based, matching model.Alarm.
func NextOccurrence(alarm model.Alarm, now time.Time) (Occurrence, bool) {
	if !alarm.IsActive {
		return Occurrence{}, false
	}
	at, err := ParseClock(alarm.Time)
	if err != nil {
		return Occurrence{}, false
	}

	now = now.UTC()
	nowMinutes := now.Hour()*60 + now.Minute()
	today := WeekdayIndex(now)

	days := make([]int, 0, len(alarm.DaysOfWeek))
	for _, d := range alarm.DaysOfWeek {
		if d >= 0 && d <= 6 {
			days = append(days, d)
		}
	}

	// One-shot alarms fire today or never.
	if len(days) == 0 {
		if at > nowMinutes {
			return occurrence(0, at), true
		}
		return Occurrence{}, false
	}

	if containsDay(days, today) && at > nowMinutes {
		return occurrence(0, at), true
	}

	sort.Ints(days)
	for _, d := range days {
		if d > today {
			return occurrence(d-today, at), true
		}
	}
	return occurrence(7-today+days[0], at), true
}

// UpcomingAlarm pairs an alarm with its resolved next trigger.
type UpcomingAlarm struct {
	Alarm       model.Alarm `json:"alarm"`
	NextTrigger string      `json:"next_trigger"`

	daysAhead int
	minutes   int
}

// Upcoming resolves every alarm and orders the results
// chronologically, soonest first: days ahead, then time of day, then
// id. Inactive and lapsed one-shot alarms are left out.
func Upcoming(alarms []model.Alarm, now time.Time) []UpcomingAlarm {
	upcoming := make([]UpcomingAlarm, 0, len(alarms))
	for _, alarm := range alarms {
		occ, ok := NextOccurrence(alarm, now)
		if !ok {
			continue
		}
		upcoming = append(upcoming, UpcomingAlarm{
			Alarm:       alarm,
			NextTrigger: occ.Label,
			daysAhead:   occ.DaysAhead,
			minutes:     occ.Minutes,
		})
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].daysAhead != upcoming[j].daysAhead {
			return upcoming[i].daysAhead < upcoming[j].daysAhead
		}
		if upcoming[i].minutes != upcoming[j].minutes {
			return upcoming[i].minutes < upcoming[j].minutes
		}
		return upcoming[i].Alarm.ID < upcoming[j].Alarm.ID
	})
	return upcoming
}

func occurrence(daysAhead, minutes int) Occurrence {
	clock := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	label := fmt.Sprintf("In %d day(s) at %s", daysAhead, clock)
	if daysAhead == 0 {
		label = "Today at " + clock
	}
	return Occurrence{DaysAhead: daysAhead, Minutes: minutes, Label: label}
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
