package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/analytics"
	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// StudyInput is a validated study session payload.
type StudyInput struct {
	Duration    int
	Subject     *string
	Notes       string
	SessionType string
}

// StudyStats summarizes a user's whole study history.
type StudyStats struct {
	TotalSessions      int64   `json:"total_sessions"`
	TotalTime          int64   `json:"total_time"`
	ThisWeekTime       int     `json:"this_week_time"`
	ThisMonthTime      int     `json:"this_month_time"`
	AverageDuration    float64 `json:"average_duration"`
	MostStudiedSubject string  `json:"most_studied_subject"`
}

// StudyService wraps study session business logic.
type StudyService struct {
	sessions *repository.StudyRepository
}

func NewStudyService(sessions *repository.StudyRepository) *StudyService {
	return &StudyService{sessions: sessions}
}

func (s *StudyService) Create(ctx context.Context, userID uint, input StudyInput, now time.Time) (*model.StudySession, error) {
	if input.Duration <= 0 {
		return nil, fmt.Errorf("duration must be a positive number of minutes")
	}

	session := &model.StudySession{
		UserID:      userID,
		Duration:    input.Duration,
		Subject:     input.Subject,
		Notes:       input.Notes,
		SessionType: input.SessionType,
		CreatedAt:   now,
	}
	if session.SessionType == "" {
		session.SessionType = "pomodoro"
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StudyService) List(ctx context.Context, userID uint, filter repository.StudyFilter) ([]model.StudySession, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	return s.sessions.List(ctx, userID, filter)
}

func (s *StudyService) Get(ctx context.Context, userID, sessionID uint) (*model.StudySession, error) {
	return s.sessions.FindByID(ctx, userID, sessionID)
}

func (s *StudyService) Update(ctx context.Context, userID, sessionID uint, input StudyInput) (*model.StudySession, error) {
	if input.Duration <= 0 {
		return nil, fmt.Errorf("duration must be a positive number of minutes")
	}

	session, err := s.sessions.FindByID(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.Duration = input.Duration
	session.Subject = input.Subject
	session.Notes = input.Notes
	if input.SessionType != "" {
		session.SessionType = input.SessionType
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StudyService) Delete(ctx context.Context, userID, sessionID uint) error {
	rows, err := s.sessions.Delete(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Analytics builds the study report over the trailing window of days.
func (s *StudyService) Analytics(ctx context.Context, userID uint, days int, now time.Time) (analytics.StudyReport, error) {
	sessions, err := s.sessions.ListSince(ctx, userID, now.AddDate(0, 0, -windowDays(days)))
	if err != nil {
		return analytics.StudyReport{}, err
	}
	return analytics.BuildStudyReport(sessions, now), nil
}

func (s *StudyService) Stats(ctx context.Context, userID uint, now time.Time) (StudyStats, error) {
	var stats StudyStats

	var err error
	if stats.TotalSessions, err = s.sessions.CountForUser(ctx, userID); err != nil {
		return stats, err
	}
	if stats.TotalTime, err = s.sessions.SumDuration(ctx, userID); err != nil {
		return stats, err
	}
	if stats.AverageDuration, err = s.sessions.AvgDuration(ctx, userID); err != nil {
		return stats, err
	}
	stats.AverageDuration = analytics.Round2(stats.AverageDuration)

	week, err := s.sessions.ListSince(ctx, userID, analytics.StartOfWeek(now))
	if err != nil {
		return stats, err
	}
	for _, session := range week {
		stats.ThisWeekTime += session.Duration
	}

	month, err := s.sessions.ListSince(ctx, userID, analytics.StartOfMonth(now))
	if err != nil {
		return stats, err
	}
	for _, session := range month {
		stats.ThisMonthTime += session.Duration
	}

	subject, ok, err := s.sessions.MostStudiedSubject(ctx, userID)
	if err != nil {
		return stats, err
	}
	if ok {
		stats.MostStudiedSubject = subject
	}
	return stats, nil
}
