package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"studydesk/internal/repository"
	"studydesk/internal/service"
)

type studyRequest struct {
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Subject     *string `json:"subject"`
	Notes       string  `json:"notes"`
	SessionType string  `json:"session_type" binding:"omitempty,oneof=pomodoro focused break"`
}

func (s *Server) listStudySessions(c *gin.Context) {
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

	sessions, err := s.svc.Study.List(c.Request.Context(), userID(c), repository.StudyFilter{
		Subject:     c.Query("subject"),
		SessionType: c.Query("session_type"),
		Start:       start,
		End:         end,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *Server) createStudySession(c *gin.Context) {
	var req studyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := s.svc.Study.Create(c.Request.Context(), userID(c), service.StudyInput{
		Duration:    req.Duration,
		Subject:     req.Subject,
		Notes:       req.Notes,
		SessionType: req.SessionType,
	}, time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Study session recorded", "session": session})
}

func (s *Server) getStudySession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	session, err := s.svc.Study.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (s *Server) updateStudySession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req studyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := s.svc.Study.Update(c.Request.Context(), userID(c), id, service.StudyInput{
		Duration:    req.Duration,
		Subject:     req.Subject,
		Notes:       req.Notes,
		SessionType: req.SessionType,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Study session updated", "session": session})
}

func (s *Server) deleteStudySession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.Study.Delete(c.Request.Context(), userID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Study session deleted"})
}

func (s *Server) studyAnalytics(c *gin.Context) {
	report, err := s.svc.Study.Analytics(c.Request.Context(), userID(c), queryDays(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) studyStats(c *gin.Context) {
	stats, err := s.svc.Study.Stats(c.Request.Context(), userID(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
