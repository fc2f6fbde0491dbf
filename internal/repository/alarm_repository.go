package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// AlarmRepository handles alarm rows.
type AlarmRepository struct {
	db *gorm.DB
}

func NewAlarmRepository(db *gorm.DB) *AlarmRepository {
	return &AlarmRepository{db: db}
}

func (r *AlarmRepository) Create(ctx context.Context, alarm *model.Alarm) error {
	if err := r.db.WithContext(ctx).Create(alarm).Error; err != nil {
		return fmt.Errorf("create alarm: %w", err)
	}
	return nil
}

// List returns a user's alarms ordered by wall-clock time, optionally
// only the active or inactive ones.
func (r *AlarmRepository) List(ctx context.Context, userID uint, active *bool) ([]model.Alarm, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var alarms []model.Alarm
	if err := q.Order("time").Find(&alarms).Error; err != nil {
		return nil, err
	}
	return alarms, nil
}

func (r *AlarmRepository) FindByID(ctx context.Context, userID, alarmID uint) (*model.Alarm, error) {
	var alarm model.Alarm
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, alarmID).
		First(&alarm).Error; err != nil {
		return nil, err
	}
	return &alarm, nil
}

func (r *AlarmRepository) Save(ctx context.Context, alarm *model.Alarm) error {
	if err := r.db.WithContext(ctx).Save(alarm).Error; err != nil {
		return fmt.Errorf("save alarm: %w", err)
	}
	return nil
}

func (r *AlarmRepository) Delete(ctx context.Context, userID, alarmID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, alarmID).
		Delete(&model.Alarm{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete alarm: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *AlarmRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Alarm{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count alarms: %w", err)
	}
	return n, nil
}

func (r *AlarmRepository) CountActive(ctx context.Context, userID uint, active bool) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Alarm{}).
		Where("user_id = ? AND is_active = ?", userID, active).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count alarms by state: %w", err)
	}
	return n, nil
}
