package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studydesk/internal/repository"
	"studydesk/internal/service"
)

type goalRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      string     `json:"status" binding:"omitempty,oneof=active completed cancelled"`
	Progress    *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	Category    string     `json:"category"`
}

func (s *Server) listGoals(c *gin.Context) {
	filter := repository.GoalFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
	}

	goals, err := s.svc.Goals.List(c.Request.Context(), userID(c), filter)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (s *Server) createGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := s.svc.Goals.Create(c.Request.Context(), userID(c), service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Priority:    req.Priority,
		Progress:    req.Progress,
		Category:    req.Category,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Goal created", "goal": goal})
}

func (s *Server) getGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	goal, err := s.svc.Goals.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

func (s *Server) updateGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := s.svc.Goals.Update(c.Request.Context(), userID(c), id, service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Priority:    req.Priority,
		Status:      req.Status,
		Progress:    req.Progress,
		Category:    req.Category,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal updated", "goal": goal})
}

func (s *Server) updateGoalProgress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Progress *int `json:"progress" binding:"required,min=0,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := s.svc.Goals.UpdateProgress(c.Request.Context(), userID(c), id, *req.Progress)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress updated", "goal": goal})
}

func (s *Server) deleteGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.Goals.Delete(c.Request.Context(), userID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

func (s *Server) goalStats(c *gin.Context) {
	stats, err := s.svc.Goals.Stats(c.Request.Context(), userID(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) goalCategories(c *gin.Context) {
	categories, err := s.svc.Goals.Categories(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
