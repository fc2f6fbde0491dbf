package analytics

import "testing"

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total int
		want             float64
	}{
		{0, 0, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{3, 3, 100},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := CompletionRate(tt.completed, tt.total); got != tt.want {
			t.Errorf("CompletionRate(%d, %d) = %v, want %v", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestBuildDashboard(t *testing.T) {
	report := BuildDashboard(DashboardCounts{
		TotalEvents:        4,
		TotalGoals:         3,
		TotalStudySessions: 8,
		RecentEvents:       2,
		CompletedGoals:     1,
		TotalStudyTime:     240,
	})

	if report.Overview.TotalEvents != 4 || report.Overview.TotalStudySessions != 8 {
		t.Errorf("overview = %+v", report.Overview)
	}
	if report.RecentActivity.Events != 2 {
		t.Errorf("recent events = %d, want 2", report.RecentActivity.Events)
	}
	if report.Achievements.GoalCompletionRate != 33.33 {
		t.Errorf("rate = %v, want 33.33", report.Achievements.GoalCompletionRate)
	}
	if report.Achievements.TotalStudyTime != 240 {
		t.Errorf("study time = %d, want 240", report.Achievements.TotalStudyTime)
	}
}
