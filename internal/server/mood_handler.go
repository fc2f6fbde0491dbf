package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studydesk/internal/service"
)

type moodRequest struct {
	Mood  string `json:"mood" binding:"required,mood"`
	Level *int   `json:"mood_level" binding:"omitempty,min=1,max=10"`
	Notes string `json:"notes"`
}

func (s *Server) listMoodEntries(c *gin.Context) {
	start, ok := queryTime(c, "start")
	if !ok {
		return
	}
	end, ok := queryTime(c, "end")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := s.svc.Mood.List(c.Request.Context(), userID(c), start, end, limit, offset)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// createMoodEntry records today's mood. An entry already made today
// is overwritten rather than duplicated.
func (s *Server) createMoodEntry(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	entry, updated, err := s.svc.Mood.Record(c.Request.Context(), userID(c), service.MoodInput{
		Mood:  req.Mood,
		Level: req.Level,
		Notes: req.Notes,
	}, time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}

	if updated {
		c.JSON(http.StatusOK, gin.H{"message": "Mood entry updated", "entry": entry})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Mood entry created", "entry": entry})
}

func (s *Server) getMoodEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := s.svc.Mood.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (s *Server) updateMoodEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	entry, err := s.svc.Mood.Update(c.Request.Context(), userID(c), id, service.MoodInput{
		Mood:  req.Mood,
		Level: req.Level,
		Notes: req.Notes,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mood entry updated", "entry": entry})
}

func (s *Server) deleteMoodEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.Mood.Delete(c.Request.Context(), userID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mood entry deleted"})
}

func (s *Server) moodAnalytics(c *gin.Context) {
	report, err := s.svc.Mood.Analytics(c.Request.Context(), userID(c), queryDays(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) moodToday(c *gin.Context) {
	entry, err := s.svc.Mood.Today(c.Request.Context(), userID(c), time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no mood entry for today"})
			return
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (s *Server) moodStreak(c *gin.Context) {
	info, err := s.svc.Mood.Streak(c.Request.Context(), userID(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
