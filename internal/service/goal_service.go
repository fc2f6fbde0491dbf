package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/analytics"
	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// GoalInput is a validated goal payload. Nil fields keep their
// current value on update.
type GoalInput struct {
	Title       string
	Description string
	TargetDate  *time.Time
	Priority    string
	Status      string
	Progress    *int
	Category    string
}

// GoalStats summarizes a user's goals.
type GoalStats struct {
	TotalGoals     int64            `json:"total_goals"`
	ActiveGoals    int64            `json:"active_goals"`
	CompletedGoals int64            `json:"completed_goals"`
	CancelledGoals int64            `json:"cancelled_goals"`
	CompletionRate float64          `json:"completion_rate"`
	OverdueGoals   int64            `json:"overdue_goals"`
	ByPriority     map[string]int64 `json:"by_priority"`
}

// GoalService wraps goal tracking business logic.
type GoalService struct {
	goals *repository.GoalRepository
}

func NewGoalService(goals *repository.GoalRepository) *GoalService {
	return &GoalService{goals: goals}
}

func (s *GoalService) Create(ctx context.Context, userID uint, input GoalInput) (*model.Goal, error) {
	goal := &model.Goal{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		TargetDate:  input.TargetDate,
		Priority:    input.Priority,
		Status:      "active",
		Category:    input.Category,
	}
	if goal.Priority == "" {
		goal.Priority = "medium"
	}
	if input.Progress != nil {
		goal.Progress = *input.Progress
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID uint, filter repository.GoalFilter) ([]model.Goal, error) {
	return s.goals.List(ctx, userID, filter)
}

func (s *GoalService) Get(ctx context.Context, userID, goalID uint) (*model.Goal, error) {
	return s.goals.FindByID(ctx, userID, goalID)
}

func (s *GoalService) Update(ctx context.Context, userID, goalID uint, input GoalInput) (*model.Goal, error) {
	goal, err := s.goals.FindByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) != "" {
		goal.Title = strings.TrimSpace(input.Title)
	}
	goal.Description = input.Description
	goal.TargetDate = input.TargetDate
	if input.Priority != "" {
		goal.Priority = input.Priority
	}
	if input.Status != "" {
		goal.Status = input.Status
	}
	goal.Category = input.Category
	if input.Progress != nil {
		goal.Progress = *input.Progress
		autoComplete(goal)
	}

	if err := s.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateProgress moves the progress bar. Hitting 100 while the goal
// is still active completes it.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID uint, progress int) (*model.Goal, error) {
	goal, err := s.goals.FindByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Progress = progress
	autoComplete(goal)

	if err := s.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID uint) error {
	rows, err := s.goals.Delete(ctx, userID, goalID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GoalService) Stats(ctx context.Context, userID uint, now time.Time) (GoalStats, error) {
	stats := GoalStats{ByPriority: map[string]int64{}}

	var err error
	if stats.TotalGoals, err = s.goals.CountForUser(ctx, userID); err != nil {
		return stats, err
	}
	for status, dst := range map[string]*int64{
		"active":    &stats.ActiveGoals,
		"completed": &stats.CompletedGoals,
		"cancelled": &stats.CancelledGoals,
	} {
		if *dst, err = s.goals.CountByStatus(ctx, userID, status); err != nil {
			return stats, err
		}
	}
	for _, priority := range []string{"low", "medium", "high"} {
		n, err := s.goals.CountByPriority(ctx, userID, priority)
		if err != nil {
			return stats, err
		}
		stats.ByPriority[priority] = n
	}
	if stats.OverdueGoals, err = s.goals.CountOverdue(ctx, userID, analytics.DayOf(now)); err != nil {
		return stats, err
	}

	stats.CompletionRate = analytics.CompletionRate(int(stats.CompletedGoals), int(stats.TotalGoals))
	return stats, nil
}

func (s *GoalService) Categories(ctx context.Context, userID uint) ([]string, error) {
	return s.goals.DistinctCategories(ctx, userID)
}

func autoComplete(goal *model.Goal) {
	if goal.Progress == 100 && goal.Status == "active" {
		goal.Status = "completed"
	}
}
