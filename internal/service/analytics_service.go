package service

import (
	"context"
	"time"

	"studydesk/internal/analytics"
	"studydesk/internal/repository"
)

// AnalyticsService gathers cross-domain snapshots and hands them to
// the pure report builders.
type AnalyticsService struct {
	calendar  *repository.CalendarRepository
	moods     *repository.MoodRepository
	journal   *repository.JournalRepository
	goals     *repository.GoalRepository
	study     *repository.StudyRepository
	blog      *repository.BlogRepository
	alarms    *repository.AlarmRepository
	documents *repository.DocumentRepository
}

func NewAnalyticsService(
	calendar *repository.CalendarRepository,
	moods *repository.MoodRepository,
	journal *repository.JournalRepository,
	goals *repository.GoalRepository,
	study *repository.StudyRepository,
	blog *repository.BlogRepository,
	alarms *repository.AlarmRepository,
	documents *repository.DocumentRepository,
) *AnalyticsService {
	return &AnalyticsService{
		calendar:  calendar,
		moods:     moods,
		journal:   journal,
		goals:     goals,
		study:     study,
		blog:      blog,
		alarms:    alarms,
		documents: documents,
	}
}

// Dashboard assembles per-domain totals, trailing-7-day activity and
// the derived achievement figures.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID uint, now time.Time) (analytics.DashboardReport, error) {
	var c analytics.DashboardCounts
	weekAgo := now.AddDate(0, 0, -7)

	totals := []struct {
		dst   *int
		count func() (int64, error)
	}{
		{&c.TotalEvents, func() (int64, error) { return s.calendar.CountForUser(ctx, userID) }},
		{&c.TotalMoodEntries, func() (int64, error) { return s.moods.CountForUser(ctx, userID) }},
		{&c.TotalJournalEntries, func() (int64, error) { return s.journal.CountForUser(ctx, userID) }},
		{&c.TotalGoals, func() (int64, error) { return s.goals.CountForUser(ctx, userID) }},
		{&c.TotalStudySessions, func() (int64, error) { return s.study.CountForUser(ctx, userID) }},
		{&c.TotalBlogPosts, func() (int64, error) { return s.blog.CountForUser(ctx, userID) }},
		{&c.TotalAlarms, func() (int64, error) { return s.alarms.CountForUser(ctx, userID) }},
		{&c.TotalDocuments, func() (int64, error) { return s.documents.CountForUser(ctx, userID) }},

		{&c.RecentEvents, func() (int64, error) { return s.calendar.CountCreatedSince(ctx, userID, weekAgo) }},
		{&c.RecentMoodEntries, func() (int64, error) { return s.moods.CountCreatedSince(ctx, userID, weekAgo) }},
		{&c.RecentJournalEntries, func() (int64, error) { return s.journal.CountCreatedSince(ctx, userID, weekAgo) }},
		{&c.RecentStudySessions, func() (int64, error) { return s.study.CountCreatedSince(ctx, userID, weekAgo) }},

		{&c.CompletedGoals, func() (int64, error) { return s.goals.CountByStatus(ctx, userID, "completed") }},
		{&c.TotalStudyTime, func() (int64, error) { return s.study.SumDuration(ctx, userID) }},
	}
	for _, t := range totals {
		n, err := t.count()
		if err != nil {
			return analytics.DashboardReport{}, err
		}
		*t.dst = int(n)
	}

	return analytics.BuildDashboard(c), nil
}

// Productivity builds the study/goal roll-up over the trailing window
// of days.
func (s *AnalyticsService) Productivity(ctx context.Context, userID uint, days int, now time.Time) (analytics.ProductivityReport, error) {
	since := now.AddDate(0, 0, -windowDays(days))

	sessions, err := s.study.ListSince(ctx, userID, since)
	if err != nil {
		return analytics.ProductivityReport{}, err
	}
	goals, err := s.goals.ListCreatedSince(ctx, userID, since)
	if err != nil {
		return analytics.ProductivityReport{}, err
	}

	return analytics.BuildProductivityReport(sessions, goals), nil
}
