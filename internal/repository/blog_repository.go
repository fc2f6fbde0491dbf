package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

// BlogFilter narrows post listings; zero fields match everything.
type BlogFilter struct {
	Public *bool
	Search string // matched against title and content
	Limit  int
	Offset int
}

// BlogRepository handles blog post rows.
type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("create blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) List(ctx context.Context, userID uint, filter BlogFilter) ([]model.BlogPost, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Public != nil {
		q = q.Where("is_public = ?", *filter.Public)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(title LIKE ? OR content LIKE ?)", like, like)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var posts []model.BlogPost
	if err := q.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, userID, postID uint) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, postID).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) Save(ctx context.Context, post *model.BlogPost) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return fmt.Errorf("save blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, userID, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, postID).
		Delete(&model.BlogPost{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete blog post: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *BlogRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return n, nil
}
