package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"studydesk/internal/analytics"
	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// AlarmInput is a validated alarm payload. Time is wall-clock "HH:MM"
// and DaysOfWeek holds Monday-based weekday numbers; an empty set
// makes a one-shot alarm.
type AlarmInput struct {
	Title      string
	Time       string
	DaysOfWeek []int
	IsActive   *bool
	Sound      string
}

// AlarmStats tallies a user's alarms.
type AlarmStats struct {
	TotalAlarms    int64 `json:"total_alarms"`
	ActiveAlarms   int64 `json:"active_alarms"`
	InactiveAlarms int64 `json:"inactive_alarms"`
}

// AlarmService wraps alarm business logic.
type AlarmService struct {
	alarms *repository.AlarmRepository
}

func NewAlarmService(alarms *repository.AlarmRepository) *AlarmService {
	return &AlarmService{alarms: alarms}
}

func (s *AlarmService) Create(ctx context.Context, userID uint, input AlarmInput) (*model.Alarm, error) {
	if err := validateAlarmInput(input); err != nil {
		return nil, err
	}

	alarm := &model.Alarm{
		UserID:     userID,
		Title:      input.Title,
		Time:       input.Time,
		DaysOfWeek: datatypes.NewJSONSlice(input.DaysOfWeek),
		IsActive:   true,
		Sound:      input.Sound,
	}
	if input.IsActive != nil {
		alarm.IsActive = *input.IsActive
	}
	if alarm.Sound == "" {
		alarm.Sound = "default"
	}
	if err := s.alarms.Create(ctx, alarm); err != nil {
		return nil, err
	}
	return alarm, nil
}

func (s *AlarmService) List(ctx context.Context, userID uint, active *bool) ([]model.Alarm, error) {
	return s.alarms.List(ctx, userID, active)
}

func (s *AlarmService) Get(ctx context.Context, userID, alarmID uint) (*model.Alarm, error) {
	return s.alarms.FindByID(ctx, userID, alarmID)
}

func (s *AlarmService) Update(ctx context.Context, userID, alarmID uint, input AlarmInput) (*model.Alarm, error) {
	if err := validateAlarmInput(input); err != nil {
		return nil, err
	}

	alarm, err := s.alarms.FindByID(ctx, userID, alarmID)
	if err != nil {
		return nil, err
	}

	alarm.Title = input.Title
	alarm.Time = input.Time
	alarm.DaysOfWeek = datatypes.NewJSONSlice(input.DaysOfWeek)
	if input.IsActive != nil {
		alarm.IsActive = *input.IsActive
	}
	if input.Sound != "" {
		alarm.Sound = input.Sound
	}
	if err := s.alarms.Save(ctx, alarm); err != nil {
		return nil, err
	}
	return alarm, nil
}

// Toggle flips the active flag and returns the new state.
func (s *AlarmService) Toggle(ctx context.Context, userID, alarmID uint) (*model.Alarm, error) {
	alarm, err := s.alarms.FindByID(ctx, userID, alarmID)
	if err != nil {
		return nil, err
	}
	alarm.IsActive = !alarm.IsActive
	if err := s.alarms.Save(ctx, alarm); err != nil {
		return nil, err
	}
	return alarm, nil
}

func (s *AlarmService) Delete(ctx context.Context, userID, alarmID uint) error {
	rows, err := s.alarms.Delete(ctx, userID, alarmID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Upcoming resolves the next trigger of every active alarm, soonest
// first.
func (s *AlarmService) Upcoming(ctx context.Context, userID uint, now time.Time) ([]analytics.UpcomingAlarm, error) {
	active := true
	alarms, err := s.alarms.List(ctx, userID, &active)
	if err != nil {
		return nil, err
	}
	return analytics.Upcoming(alarms, now), nil
}

func (s *AlarmService) Stats(ctx context.Context, userID uint) (AlarmStats, error) {
	var stats AlarmStats

	var err error
	if stats.TotalAlarms, err = s.alarms.CountForUser(ctx, userID); err != nil {
		return stats, err
	}
	if stats.ActiveAlarms, err = s.alarms.CountActive(ctx, userID, true); err != nil {
		return stats, err
	}
	stats.InactiveAlarms = stats.TotalAlarms - stats.ActiveAlarms
	return stats, nil
}

func validateAlarmInput(input AlarmInput) error {
	if _, err := analytics.ParseClock(input.Time); err != nil {
		return fmt.Errorf("time must be HH:MM: %w", err)
	}
	for _, d := range input.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("day of week %d out of range 0-6", d)
		}
	}
	return nil
}
