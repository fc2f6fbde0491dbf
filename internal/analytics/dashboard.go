package analytics

// DashboardCounts carries the per-domain tallies the dashboard is
// assembled from. Gathering them is the caller's business; this
// package only shapes and derives.
type DashboardCounts struct {
	TotalEvents         int
	TotalMoodEntries    int
	TotalJournalEntries int
	TotalGoals          int
	TotalStudySessions  int
	TotalBlogPosts      int
	TotalAlarms         int
	TotalDocuments      int

	RecentEvents         int
	RecentMoodEntries    int
	RecentJournalEntries int
	RecentStudySessions  int

	CompletedGoals int
	TotalStudyTime int
}

// DashboardOverview is the all-time totals section.
type DashboardOverview struct {
	TotalEvents         int `json:"total_events"`
	TotalMoodEntries    int `json:"total_mood_entries"`
	TotalJournalEntries int `json:"total_journal_entries"`
	TotalGoals          int `json:"total_goals"`
	TotalStudySessions  int `json:"total_study_sessions"`
	TotalBlogPosts      int `json:"total_blog_posts"`
	TotalAlarms         int `json:"total_alarms"`
	TotalDocuments      int `json:"total_documents"`
}

// DashboardRecent counts records created in the trailing seven days.
type DashboardRecent struct {
	Events         int `json:"events"`
	MoodEntries    int `json:"mood_entries"`
	JournalEntries int `json:"journal_entries"`
	StudySessions  int `json:"study_sessions"`
}

// DashboardAchievements is the derived-measures section.
type DashboardAchievements struct {
	GoalCompletionRate float64 `json:"goal_completion_rate"`
	TotalStudyTime     int     `json:"total_study_time"`
}

// DashboardReport is the full dashboard payload.
type DashboardReport struct {
	Overview       DashboardOverview     `json:"overview"`
	RecentActivity DashboardRecent       `json:"recent_activity"`
	Achievements   DashboardAchievements `json:"achievements"`
}

// BuildDashboard shapes gathered counts into the dashboard payload.
func BuildDashboard(c DashboardCounts) DashboardReport {
	return DashboardReport{
		Overview: DashboardOverview{
			TotalEvents:         c.TotalEvents,
			TotalMoodEntries:    c.TotalMoodEntries,
			TotalJournalEntries: c.TotalJournalEntries,
			TotalGoals:          c.TotalGoals,
			TotalStudySessions:  c.TotalStudySessions,
			TotalBlogPosts:      c.TotalBlogPosts,
			TotalAlarms:         c.TotalAlarms,
			TotalDocuments:      c.TotalDocuments,
		},
		RecentActivity: DashboardRecent{
			Events:         c.RecentEvents,
			MoodEntries:    c.RecentMoodEntries,
			JournalEntries: c.RecentJournalEntries,
			StudySessions:  c.RecentStudySessions,
		},
		Achievements: DashboardAchievements{
			GoalCompletionRate: CompletionRate(c.CompletedGoals, c.TotalGoals),
			TotalStudyTime:     c.TotalStudyTime,
		},
	}
}

// CompletionRate is the share of completed items as a percentage,
// rounded to two decimals; zero when total is zero.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(completed) / float64(total) * 100)
}
