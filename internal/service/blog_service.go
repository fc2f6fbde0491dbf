package service

import (
	"context"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// BlogInput is a validated blog post payload.
type BlogInput struct {
	Title    string
	Content  string
	Tags     []string
	IsPublic bool
}

// BlogService wraps blog post business logic.
type BlogService struct {
	posts *repository.BlogRepository
}

func NewBlogService(posts *repository.BlogRepository) *BlogService {
	return &BlogService{posts: posts}
}

func (s *BlogService) Create(ctx context.Context, userID uint, input BlogInput) (*model.BlogPost, error) {
	post := &model.BlogPost{
		UserID:   userID,
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		Tags:     datatypes.NewJSONSlice(input.Tags),
		IsPublic: input.IsPublic,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) List(ctx context.Context, userID uint, filter repository.BlogFilter) ([]model.BlogPost, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.posts.List(ctx, userID, filter)
}

func (s *BlogService) Get(ctx context.Context, userID, postID uint) (*model.BlogPost, error) {
	return s.posts.FindByID(ctx, userID, postID)
}

func (s *BlogService) Update(ctx context.Context, userID, postID uint, input BlogInput) (*model.BlogPost, error) {
	post, err := s.posts.FindByID(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) != "" {
		post.Title = strings.TrimSpace(input.Title)
	}
	post.Content = input.Content
	post.Tags = datatypes.NewJSONSlice(input.Tags)
	post.IsPublic = input.IsPublic

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) Delete(ctx context.Context, userID, postID uint) error {
	rows, err := s.posts.Delete(ctx, userID, postID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
