package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// StudyFilter narrows session listings; zero fields match everything.
type StudyFilter struct {
	Subject     string // substring match
	SessionType string
	Start       *time.Time
	End         *time.Time
	Limit       int
	Offset      int
}

// SubjectTotal is a per-subject duration sum.
type SubjectTotal struct {
	Subject string
	Total   int
}

// StudyRepository handles study session rows.
type StudyRepository struct {
	db *gorm.DB
}

func NewStudyRepository(db *gorm.DB) *StudyRepository {
	return &StudyRepository{db: db}
}

func (r *StudyRepository) Create(ctx context.Context, session *model.StudySession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create study session: %w", err)
	}
	return nil
}

func (r *StudyRepository) List(ctx context.Context, userID uint, filter StudyFilter) ([]model.StudySession, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Subject != "" {
		q = q.Where("subject LIKE ?", "%"+filter.Subject+"%")
	}
	if filter.SessionType != "" {
		q = q.Where("session_type = ?", filter.SessionType)
	}
	if filter.Start != nil {
		q = q.Where("created_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("created_at <= ?", *filter.End)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var sessions []model.StudySession
	if err := q.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListSince returns sessions created at or after since, oldest first.
func (r *StudyRepository) ListSince(ctx context.Context, userID uint, since time.Time) ([]model.StudySession, error) {
	var sessions []model.StudySession
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *StudyRepository) FindByID(ctx context.Context, userID, sessionID uint) (*model.StudySession, error) {
	var session model.StudySession
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, sessionID).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *StudyRepository) Save(ctx context.Context, session *model.StudySession) error {
	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return fmt.Errorf("save study session: %w", err)
	}
	return nil
}

func (r *StudyRepository) Delete(ctx context.Context, userID, sessionID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, sessionID).
		Delete(&model.StudySession{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete study session: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *StudyRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.StudySession{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count study sessions: %w", err)
	}
	return n, nil
}

func (r *StudyRepository) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.StudySession{}).
		Where("user_id = ? AND created_at >= ?", userID, since).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count recent study sessions: %w", err)
	}
	return n, nil
}

// SumDuration totals every session's minutes for a user.
func (r *StudyRepository) SumDuration(ctx context.Context, userID uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.StudySession{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration), 0)").Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("sum study duration: %w", err)
	}
	return total, nil
}

// AvgDuration is the mean session length in minutes, zero when the
// user has none.
func (r *StudyRepository) AvgDuration(ctx context.Context, userID uint) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).Model(&model.StudySession{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(duration), 0)").Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("average study duration: %w", err)
	}
	return avg, nil
}

// MostStudiedSubject returns the subject with the largest summed
// duration; ok is false when the user has no subject-tagged sessions.
func (r *StudyRepository) MostStudiedSubject(ctx context.Context, userID uint) (string, bool, error) {
	var rows []SubjectTotal
	if err := r.db.WithContext(ctx).Model(&model.StudySession{}).
		Select("subject, SUM(duration) AS total").
		Where("user_id = ? AND subject IS NOT NULL", userID).
		Group("subject").Order("total DESC").Limit(1).
		Scan(&rows).Error; err != nil {
		return "", false, fmt.Errorf("most studied subject: %w", err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Subject, true, nil
}
