package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// MoodCount is a per-mood tally for the journal stats.
type MoodCount struct {
	Mood  string
	Count int64
}

// JournalRepository handles journal entry rows.
type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Create(ctx context.Context, entry *model.JournalEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepository) List(ctx context.Context, userID uint, limit, offset int) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepository) FindByID(ctx context.Context, userID, entryID uint) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, entryID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *JournalRepository) Save(ctx context.Context, entry *model.JournalEntry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("save journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepository) Delete(ctx context.Context, userID, entryID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, entryID).
		Delete(&model.JournalEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete journal entry: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Search matches the stored content column, so obfuscated entries
// only match their stored form.
func (r *JournalRepository) Search(ctx context.Context, userID uint, query string) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND content LIKE ?", userID, "%"+query+"%").
		Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.JournalEntry{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count journal entries: %w", err)
	}
	return n, nil
}

func (r *JournalRepository) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.JournalEntry{}).
		Where("user_id = ? AND created_at >= ?", userID, since).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count recent journal entries: %w", err)
	}
	return n, nil
}

// MoodCounts tallies entries per recorded mood, skipping entries
// without one.
func (r *JournalRepository) MoodCounts(ctx context.Context, userID uint) ([]MoodCount, error) {
	var rows []MoodCount
	if err := r.db.WithContext(ctx).Model(&model.JournalEntry{}).
		Select("mood, COUNT(*) AS count").
		Where("user_id = ? AND mood != ''", userID).
		Group("mood").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("journal mood counts: %w", err)
	}
	return rows, nil
}
