package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studydesk/internal/service"
)

type alarmRequest struct {
	Title      string `json:"title" binding:"required"`
	Time       string `json:"time" binding:"required,clock"`
	DaysOfWeek []int  `json:"days_of_week" binding:"omitempty,dive,min=0,max=6"`
	IsActive   *bool  `json:"is_active"`
	Sound      string `json:"sound"`
}

func (s *Server) listAlarms(c *gin.Context) {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		val := raw == "true"
		active = &val
	}

	alarms, err := s.svc.Alarms.List(c.Request.Context(), userID(c), active)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alarms": alarms})
}

func (s *Server) createAlarm(c *gin.Context) {
	var req alarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	alarm, err := s.svc.Alarms.Create(c.Request.Context(), userID(c), service.AlarmInput{
		Title:      req.Title,
		Time:       req.Time,
		DaysOfWeek: req.DaysOfWeek,
		IsActive:   req.IsActive,
		Sound:      req.Sound,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Alarm created", "alarm": alarm})
}

func (s *Server) getAlarm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	alarm, err := s.svc.Alarms.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alarm": alarm})
}

func (s *Server) updateAlarm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req alarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	alarm, err := s.svc.Alarms.Update(c.Request.Context(), userID(c), id, service.AlarmInput{
		Title:      req.Title,
		Time:       req.Time,
		DaysOfWeek: req.DaysOfWeek,
		IsActive:   req.IsActive,
		Sound:      req.Sound,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alarm updated", "alarm": alarm})
}

func (s *Server) toggleAlarm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	alarm, err := s.svc.Alarms.Toggle(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alarm toggled", "alarm": alarm})
}

func (s *Server) deleteAlarm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.Alarms.Delete(c.Request.Context(), userID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alarm deleted"})
}

func (s *Server) upcomingAlarms(c *gin.Context) {
	upcoming, err := s.svc.Alarms.Upcoming(c.Request.Context(), userID(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming})
}

func (s *Server) alarmStats(c *gin.Context) {
	stats, err := s.svc.Alarms.Stats(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
