package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// CalendarRepository handles calendar event rows.
type CalendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) Create(ctx context.Context, event *model.CalendarEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// List returns a user's events, optionally limited to a start_time
// range, ordered by start time.
func (r *CalendarRepository) List(ctx context.Context, userID uint, from, to *time.Time) ([]model.CalendarEvent, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("start_time >= ?", *from)
	}
	if to != nil {
		q = q.Where("start_time <= ?", *to)
	}

	var events []model.CalendarEvent
	if err := q.Order("start_time").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *CalendarRepository) FindByID(ctx context.Context, userID, eventID uint) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, eventID).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *CalendarRepository) Save(ctx context.Context, event *model.CalendarEvent) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func (r *CalendarRepository) Delete(ctx context.Context, userID, eventID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, eventID).
		Delete(&model.CalendarEvent{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete event: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Search matches the query against titles and descriptions,
// case-insensitively.
func (r *CalendarRepository) Search(ctx context.Context, userID uint, query string) ([]model.CalendarEvent, error) {
	like := "%" + query + "%"
	var events []model.CalendarEvent
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND (title LIKE ? OR description LIKE ?)", userID, like, like).
		Order("start_time").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *CalendarRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.CalendarEvent{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

func (r *CalendarRepository) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.CalendarEvent{}).
		Where("user_id = ? AND created_at >= ?", userID, since).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count recent events: %w", err)
	}
	return n, nil
}
