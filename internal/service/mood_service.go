package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/analytics"
	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// MoodInput is a validated mood entry payload. A nil Level takes the
// default for the category.
type MoodInput struct {
	Mood  string
	Level *int
	Notes string
}

// MoodService wraps mood tracking business logic.
type MoodService struct {
	moods *repository.MoodRepository
}

func NewMoodService(moods *repository.MoodRepository) *MoodService {
	return &MoodService{moods: moods}
}

// Record stores a mood entry for the calendar day of now. One entry
// per day is the create-path policy: an existing entry for that day
// is overwritten in place. The second return reports whether an
// existing entry was updated rather than a new one created.
func (s *MoodService) Record(ctx context.Context, userID uint, input MoodInput, now time.Time) (*model.MoodEntry, bool, error) {
	if !model.ValidMood(input.Mood) {
		return nil, false, fmt.Errorf("unknown mood category %q", input.Mood)
	}

	level := model.MoodLevels[input.Mood]
	if input.Level != nil {
		level = *input.Level
	}

	dayStart := analytics.DayOf(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := s.moods.FindFirstBetween(ctx, userID, dayStart, dayEnd)
	switch {
	case err == nil:
		existing.Mood = input.Mood
		existing.MoodLevel = level
		existing.Notes = input.Notes
		if err := s.moods.Save(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := &model.MoodEntry{
			UserID:    userID,
			Mood:      input.Mood,
			MoodLevel: level,
			Notes:     input.Notes,
			CreatedAt: now,
		}
		if err := s.moods.Create(ctx, entry); err != nil {
			return nil, false, err
		}
		return entry, false, nil
	default:
		return nil, false, err
	}
}

func (s *MoodService) List(ctx context.Context, userID uint, start, end *time.Time, limit, offset int) ([]model.MoodEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.moods.List(ctx, userID, start, end, limit, offset)
}

func (s *MoodService) Get(ctx context.Context, userID, entryID uint) (*model.MoodEntry, error) {
	return s.moods.FindByID(ctx, userID, entryID)
}

func (s *MoodService) Update(ctx context.Context, userID, entryID uint, input MoodInput) (*model.MoodEntry, error) {
	if !model.ValidMood(input.Mood) {
		return nil, fmt.Errorf("unknown mood category %q", input.Mood)
	}

	entry, err := s.moods.FindByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Mood = input.Mood
	if input.Level != nil {
		entry.MoodLevel = *input.Level
	}
	entry.Notes = input.Notes
	if err := s.moods.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *MoodService) Delete(ctx context.Context, userID, entryID uint) error {
	rows, err := s.moods.Delete(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Today returns the entry recorded on the calendar day of now.
func (s *MoodService) Today(ctx context.Context, userID uint, now time.Time) (*model.MoodEntry, error) {
	dayStart := analytics.DayOf(now)
	return s.moods.FindFirstBetween(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
}

// Analytics builds the mood report over the trailing window of days.
// The analytics layer takes the rows as they are, several per day
// included.
func (s *MoodService) Analytics(ctx context.Context, userID uint, days int, now time.Time) (analytics.MoodReport, error) {
	entries, err := s.moods.ListSince(ctx, userID, now.AddDate(0, 0, -windowDays(days)))
	if err != nil {
		return analytics.MoodReport{}, err
	}
	return analytics.BuildMoodReport(entries), nil
}

// StreakInfo reports the current and longest mood logging streaks.
type StreakInfo struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

func (s *MoodService) Streak(ctx context.Context, userID uint, now time.Time) (StreakInfo, error) {
	entries, err := s.moods.ListAll(ctx, userID)
	if err != nil {
		return StreakInfo{}, err
	}
	dates := make([]time.Time, len(entries))
	for i, e := range entries {
		dates[i] = e.CreatedAt
	}
	current, longest := analytics.Streak(dates, now)
	return StreakInfo{CurrentStreak: current, LongestStreak: longest}, nil
}

// windowDays clamps a days query parameter to a sane trailing window.
func windowDays(days int) int {
	if days <= 0 {
		return 30
	}
	if days > 365 {
		return 365
	}
	return days
}
