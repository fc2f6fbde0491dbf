package analytics

import (
	"testing"
	"time"

	"studydesk/internal/model"
)

func goalWith(status string, updated time.Time) model.Goal {
	return model.Goal{Title: "g", Status: status, UpdatedAt: updated}
}

func TestBuildProductivityReportEmpty(t *testing.T) {
	report := BuildProductivityReport(nil, nil)

	if report.TotalStudyTime != 0 || report.AverageSessionDuration != 0 || report.GoalCompletionRate != 0 {
		t.Errorf("got %+v, want zeros", report)
	}
	if report.DailyBreakdown == nil || len(report.DailyBreakdown) != 0 {
		t.Errorf("DailyBreakdown = %v, want empty", report.DailyBreakdown)
	}
}

func TestBuildProductivityReportCompletionRate(t *testing.T) {
	goals := []model.Goal{
		goalWith("completed", day(2025, time.March, 5)),
		goalWith("active", day(2025, time.March, 5)),
		goalWith("active", day(2025, time.March, 6)),
	}

	report := BuildProductivityReport(nil, goals)
	if report.GoalCompletionRate != 33.33 {
		t.Errorf("GoalCompletionRate = %v, want 33.33", report.GoalCompletionRate)
	}
}

func TestBuildProductivityReportDailyBuckets(t *testing.T) {
	sessions := []model.StudySession{
		session(25, "Math", at(2025, time.March, 4, 9, 0)),
		session(35, "Math", at(2025, time.March, 4, 14, 0)),
	}
	goals := []model.Goal{
		goalWith("completed", at(2025, time.March, 6, 18, 0)),
		goalWith("cancelled", at(2025, time.March, 4, 10, 0)),
	}

	report := BuildProductivityReport(sessions, goals)

	if report.TotalStudyTime != 60 {
		t.Errorf("TotalStudyTime = %d, want 60", report.TotalStudyTime)
	}
	if report.AverageSessionDuration != 30 {
		t.Errorf("AverageSessionDuration = %v, want 30", report.AverageSessionDuration)
	}
	if report.GoalCompletionRate != 50 {
		t.Errorf("GoalCompletionRate = %v, want 50", report.GoalCompletionRate)
	}

	if len(report.DailyBreakdown) != 2 {
		t.Fatalf("daily length = %d, want 2", len(report.DailyBreakdown))
	}
	d0, d1 := report.DailyBreakdown[0], report.DailyBreakdown[1]
	if d0.Date != "2025-03-04" || d0.StudyTime != 60 || d0.Sessions != 2 || d0.GoalsCompleted != 0 {
		t.Errorf("daily[0] = %+v", d0)
	}
	if d1.Date != "2025-03-06" || d1.StudyTime != 0 || d1.Sessions != 0 || d1.GoalsCompleted != 1 {
		t.Errorf("daily[1] = %+v", d1)
	}
}
