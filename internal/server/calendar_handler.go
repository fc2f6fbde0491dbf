package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studydesk/internal/service"
)

// eventRequest carries a calendar event in the FullCalendar wire
// shape the frontend speaks.
type eventRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	Start           time.Time  `json:"start" binding:"required"`
	End             *time.Time `json:"end"`
	AllDay          bool       `json:"allDay"`
	BackgroundColor string     `json:"backgroundColor"`
	BorderColor     string     `json:"borderColor"`
	TextColor       string     `json:"textColor"`
	IsRecurring     bool       `json:"isRecurring"`
	RecurrenceType  string     `json:"recurrenceType" binding:"omitempty,oneof=daily weekly monthly"`
	RecurrenceEnd   *time.Time `json:"recurrenceEnd"`
}

func (r eventRequest) input() service.EventInput {
	return service.EventInput{
		Title:           r.Title,
		Description:     r.Description,
		Start:           r.Start.UTC(),
		End:             r.End,
		AllDay:          r.AllDay,
		BackgroundColor: r.BackgroundColor,
		BorderColor:     r.BorderColor,
		TextColor:       r.TextColor,
		IsRecurring:     r.IsRecurring,
		RecurrenceType:  r.RecurrenceType,
		RecurrenceEnd:   r.RecurrenceEnd,
	}
}

func (s *Server) listEvents(c *gin.Context) {
	from, ok := queryTime(c, "start")
	if !ok {
		return
	}
	to, ok := queryTime(c, "end")
	if !ok {
		return
	}

	events, err := s.svc.Calendar.List(c.Request.Context(), userID(c), from, to)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *Server) createEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	event, err := s.svc.Calendar.Create(c.Request.Context(), userID(c), req.input())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created", "event": event})
}

func (s *Server) bulkCreateEvents(c *gin.Context) {
	var req struct {
		Events []eventRequest `json:"events" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	inputs := make([]service.EventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = e.input()
	}

	created, err := s.svc.Calendar.BulkCreate(c.Request.Context(), userID(c), inputs)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Events created", "created": created})
}

func (s *Server) searchEvents(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing q parameter"})
		return
	}

	events, err := s.svc.Calendar.Search(c.Request.Context(), userID(c), query)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *Server) getEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := s.svc.Calendar.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (s *Server) updateEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	event, err := s.svc.Calendar.Update(c.Request.Context(), userID(c), id, req.input())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated", "event": event})
}

func (s *Server) deleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.Calendar.Delete(c.Request.Context(), userID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
