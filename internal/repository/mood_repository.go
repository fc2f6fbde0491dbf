package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// MoodRepository handles mood entry rows.
type MoodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

func (r *MoodRepository) Create(ctx context.Context, entry *model.MoodEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create mood entry: %w", err)
	}
	return nil
}

// List returns entries newest first with optional created_at bounds.
func (r *MoodRepository) List(ctx context.Context, userID uint, start, end *time.Time, limit, offset int) ([]model.MoodEntry, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at <= ?", *end)
	}

	var entries []model.MoodEntry
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListSince returns entries created at or after since, oldest first,
// the order the analytics builders expect.
func (r *MoodRepository) ListSince(ctx context.Context, userID uint, since time.Time) ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListAll returns every entry of a user, for streak computation.
func (r *MoodRepository) ListAll(ctx context.Context, userID uint) ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindFirstBetween returns the first entry in [start, end), used to
// locate today's entry for the per-day upsert.
func (r *MoodRepository) FindFirstBetween(ctx context.Context, userID uint, start, end time.Time) (*model.MoodEntry, error) {
	var entry model.MoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MoodRepository) FindByID(ctx context.Context, userID, entryID uint) (*model.MoodEntry, error) {
	var entry model.MoodEntry
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, entryID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MoodRepository) Save(ctx context.Context, entry *model.MoodEntry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("save mood entry: %w", err)
	}
	return nil
}

func (r *MoodRepository) Delete(ctx context.Context, userID, entryID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, entryID).
		Delete(&model.MoodEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete mood entry: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *MoodRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.MoodEntry{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count mood entries: %w", err)
	}
	return n, nil
}

func (r *MoodRepository) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.MoodEntry{}).
		Where("user_id = ? AND created_at >= ?", userID, since).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count recent mood entries: %w", err)
	}
	return n, nil
}
