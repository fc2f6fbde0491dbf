package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// PasswordResetRepository handles reset token rows.
type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, reset *model.PasswordReset) error {
	if err := r.db.WithContext(ctx).Create(reset).Error; err != nil {
		return fmt.Errorf("create password reset: %w", err)
	}
	return nil
}

// DeleteForUser drops every outstanding token of a user; a new
// request invalidates older links.
func (r *PasswordResetRepository) DeleteForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Delete(&model.PasswordReset{}).Error; err != nil {
		return fmt.Errorf("delete password resets: %w", err)
	}
	return nil
}

// FindUnused looks a token up regardless of expiry; the caller checks
// the clock so the error message can tell expiry from forgery.
func (r *PasswordResetRepository) FindUnused(ctx context.Context, token string) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	if err := r.db.WithContext(ctx).Where("token = ? AND is_used = ?", token, false).
		First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, reset *model.PasswordReset) error {
	reset.IsUsed = true
	if err := r.db.WithContext(ctx).Save(reset).Error; err != nil {
		return fmt.Errorf("mark reset used: %w", err)
	}
	return nil
}

// PurgeExpired deletes tokens that expired before now, plus used
// ones. Returns the number of rows removed.
func (r *PasswordResetRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ? OR is_used = ?", now, true).
		Delete(&model.PasswordReset{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge password resets: %w", res.Error)
	}
	return res.RowsAffected, nil
}
