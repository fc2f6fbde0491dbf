package analytics

import (
	"sort"
	"strconv"
	"time"

	"studydesk/internal/model"
)

// DayTotal is one day's summed study minutes.
type DayTotal struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

// WeekTotal is one ISO week's summed study minutes.
type WeekTotal struct {
	Week     string `json:"week"`
	Duration int    `json:"duration"`
}

// StudyReport aggregates a window of study sessions.
type StudyReport struct {
	TotalSessions        int            `json:"total_sessions"`
	TotalTime            int            `json:"total_time"`
	AverageSession       float64        `json:"average_session"`
	DailyBreakdown       []DayTotal     `json:"daily_breakdown"`
	SubjectBreakdown     map[string]int `json:"subject_breakdown"`
	SessionTypeBreakdown map[string]int `json:"session_type_breakdown"`
	WeeklyTotals         []WeekTotal    `json:"weekly_totals"`
	Streak               int            `json:"streak"`
}

// BuildStudyReport aggregates a window of sessions into totals,
// per-day, per-subject, per-type and per-ISO-week sums, plus the
// current study streak as of now. Sessions without a subject land
// under "Unknown".
func BuildStudyReport(sessions []model.StudySession, now time.Time) StudyReport {
	report := StudyReport{
		DailyBreakdown:       []DayTotal{},
		SubjectBreakdown:     map[string]int{},
		SessionTypeBreakdown: map[string]int{},
		WeeklyTotals:         []WeekTotal{},
	}
	if len(sessions) == 0 {
		return report
	}

	daySum := map[string]int{}
	weekSum := map[int]int{}
	total := 0
	dates := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		total += s.Duration
		daySum[DateKey(s.CreatedAt)] += s.Duration
		weekSum[WeekOf(s.CreatedAt)] += s.Duration
		subject := "Unknown"
		if s.Subject != nil && *s.Subject != "" {
			subject = *s.Subject
		}
		report.SubjectBreakdown[subject] += s.Duration
		report.SessionTypeBreakdown[s.SessionType] += s.Duration
		dates = append(dates, s.CreatedAt)
	}

	report.TotalSessions = len(sessions)
	report.TotalTime = total
	report.AverageSession = Round2(float64(total) / float64(len(sessions)))

	for key, sum := range daySum {
		report.DailyBreakdown = append(report.DailyBreakdown, DayTotal{Date: key, Duration: sum})
	}
	sort.Slice(report.DailyBreakdown, func(i, j int) bool {
		return report.DailyBreakdown[i].Date < report.DailyBreakdown[j].Date
	})

	weeks := make([]int, 0, len(weekSum))
	for w := range weekSum {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	for _, w := range weeks {
		report.WeeklyTotals = append(report.WeeklyTotals, WeekTotal{Week: strconv.Itoa(w), Duration: weekSum[w]})
	}

	report.Streak, _ = Streak(dates, now)
	return report
}
