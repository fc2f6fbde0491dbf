package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// TypeStat aggregates documents of one file type.
type TypeStat struct {
	FileType  string
	Count     int64
	TotalSize int64
}

// DocumentRepository handles uploaded document rows.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) List(ctx context.Context, userID uint, category, fileType string) ([]model.Document, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if fileType != "" {
		q = q.Where("file_type = ?", fileType)
	}

	var docs []model.Document
	if err := q.Order("uploaded_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, userID, docID uint) (*model.Document, error) {
	var doc model.Document
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, docID).
		First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository) Save(ctx context.Context, doc *model.Document) error {
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, userID, docID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, docID).
		Delete(&model.Document{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete document: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DistinctCategories returns the categories a user has filed
// documents under.
func (r *DocumentRepository) DistinctCategories(ctx context.Context, userID uint) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).Model(&model.Document{}).
		Where("user_id = ? AND category != ''", userID).
		Distinct().Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("list document categories: %w", err)
	}
	return categories, nil
}

func (r *DocumentRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Document{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func (r *DocumentRepository) CountUploadedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Document{}).
		Where("user_id = ? AND uploaded_at >= ?", userID, since).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count recent documents: %w", err)
	}
	return n, nil
}

// SumSize totals the stored bytes of a user's documents.
func (r *DocumentRepository) SumSize(ctx context.Context, userID uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Document{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(file_size), 0)").Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("sum document sizes: %w", err)
	}
	return total, nil
}

// TypeStats aggregates count and size per file type.
func (r *DocumentRepository) TypeStats(ctx context.Context, userID uint) ([]TypeStat, error) {
	var rows []TypeStat
	if err := r.db.WithContext(ctx).Model(&model.Document{}).
		Select("file_type, COUNT(*) AS count, COALESCE(SUM(file_size), 0) AS total_size").
		Where("user_id = ?", userID).
		Group("file_type").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("document type stats: %w", err)
	}
	return rows, nil
}
