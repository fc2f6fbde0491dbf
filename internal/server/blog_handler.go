package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studydesk/internal/repository"
	"studydesk/internal/service"
)

type blogRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Tags     []string `json:"tags"`
	IsPublic bool     `json:"is_public"`
}

func (s *Server) listBlogPosts(c *gin.Context) {
	filter := repository.BlogFilter{Search: c.Query("q")}
	if raw := c.Query("public"); raw != "" {
		public := raw == "true"
		filter.Public = &public
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := s.svc.Blog.List(c.Request.Context(), userID(c), filter)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (s *Server) createBlogPost(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := s.svc.Blog.Create(c.Request.Context(), userID(c), service.BlogInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Post created", "post": post})
}

func (s *Server) getBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := s.svc.Blog.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (s *Server) updateBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := s.svc.Blog.Update(c.Request.Context(), userID(c), id, service.BlogInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated", "post": post})
}

func (s *Server) deleteBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.Blog.Delete(c.Request.Context(), userID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
