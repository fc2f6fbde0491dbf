package analytics

import (
	"sort"

	"studydesk/internal/model"
)

// ProductivityDay is one day's combined output measures.
type ProductivityDay struct {
	Date           string `json:"date"`
	StudyTime      int    `json:"study_time"`
	Sessions       int    `json:"sessions"`
	GoalsCompleted int    `json:"goals_completed"`
}

// ProductivityReport summarizes study output and goal completion over
// a window.
type ProductivityReport struct {
	TotalStudyTime         int               `json:"total_study_time"`
	AverageSessionDuration float64           `json:"average_session_duration"`
	GoalCompletionRate     float64           `json:"goal_completion_rate"`
	DailyBreakdown         []ProductivityDay `json:"daily_breakdown"`
}

// BuildProductivityReport merges study sessions and goals from the
// same window into daily buckets. A completed goal is counted on the
// day it was last updated, which is when completion happened.
func BuildProductivityReport(sessions []model.StudySession, goals []model.Goal) ProductivityReport {
	report := ProductivityReport{DailyBreakdown: []ProductivityDay{}}

	days := map[string]*ProductivityDay{}
	day := func(key string) *ProductivityDay {
		d, ok := days[key]
		if !ok {
			d = &ProductivityDay{Date: key}
			days[key] = d
		}
		return d
	}

	total := 0
	for _, s := range sessions {
		total += s.Duration
		d := day(DateKey(s.CreatedAt))
		d.StudyTime += s.Duration
		d.Sessions++
	}

	completed := 0
	for _, g := range goals {
		if g.Status != "completed" {
			continue
		}
		completed++
		day(DateKey(g.UpdatedAt)).GoalsCompleted++
	}

	report.TotalStudyTime = total
	if len(sessions) > 0 {
		report.AverageSessionDuration = Round2(float64(total) / float64(len(sessions)))
	}
	report.GoalCompletionRate = CompletionRate(completed, len(goals))

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		report.DailyBreakdown = append(report.DailyBreakdown, *days[k])
	}
	return report
}
