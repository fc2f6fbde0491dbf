package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// GoalFilter narrows goal listings; empty fields match everything.
type GoalFilter struct {
	Status   string
	Category string
	Priority string
}

// GoalRepository handles goal rows.
type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) List(ctx context.Context, userID uint, filter GoalFilter) ([]model.Goal, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	var goals []model.Goal
	if err := q.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// ListCreatedSince returns goals created at or after since, for the
// productivity report.
func (r *GoalRepository) ListCreatedSince(ctx context.Context, userID uint, since time.Time) ([]model.Goal, error) {
	var goals []model.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *GoalRepository) FindByID(ctx context.Context, userID, goalID uint) (*model.Goal, error) {
	var goal model.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, goalID).
		First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Save(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, userID, goalID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, goalID).
		Delete(&model.Goal{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete goal: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *GoalRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count goals: %w", err)
	}
	return n, nil
}

func (r *GoalRepository) CountByStatus(ctx context.Context, userID uint, status string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("user_id = ? AND status = ?", userID, status).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count goals by status: %w", err)
	}
	return n, nil
}

func (r *GoalRepository) CountByPriority(ctx context.Context, userID uint, priority string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("user_id = ? AND priority = ?", userID, priority).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count goals by priority: %w", err)
	}
	return n, nil
}

// CountOverdue counts active goals whose target date lies before
// today.
func (r *GoalRepository) CountOverdue(ctx context.Context, userID uint, today time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("user_id = ? AND status = ? AND target_date < ?", userID, "active", today).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count overdue goals: %w", err)
	}
	return n, nil
}

// DistinctCategories returns the non-empty categories a user has
// used.
func (r *GoalRepository) DistinctCategories(ctx context.Context, userID uint) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("user_id = ? AND category IS NOT NULL AND category != ''", userID).
		Distinct().Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("list goal categories: %w", err)
	}
	return categories, nil
}
