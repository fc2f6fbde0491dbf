package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"studydesk/internal/service"
)

type journalRequest struct {
	Content     string `json:"content" binding:"required"`
	Mood        string `json:"mood" binding:"omitempty,mood"`
	IsEncrypted bool   `json:"is_encrypted"`
}

func (s *Server) listJournalEntries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := s.svc.Journal.List(c.Request.Context(), userID(c), limit, offset)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) createJournalEntry(c *gin.Context) {
	var req journalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	entry, err := s.svc.Journal.Create(c.Request.Context(), userID(c), service.JournalInput{
		Content:     req.Content,
		Mood:        req.Mood,
		IsEncrypted: req.IsEncrypted,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Journal entry created", "entry": entry})
}

func (s *Server) getJournalEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := s.svc.Journal.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (s *Server) updateJournalEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req journalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	entry, err := s.svc.Journal.Update(c.Request.Context(), userID(c), id, service.JournalInput{
		Content:     req.Content,
		Mood:        req.Mood,
		IsEncrypted: req.IsEncrypted,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal entry updated", "entry": entry})
}

func (s *Server) deleteJournalEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.Journal.Delete(c.Request.Context(), userID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted"})
}

func (s *Server) searchJournal(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing q parameter"})
		return
	}

	entries, err := s.svc.Journal.Search(c.Request.Context(), userID(c), query)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) journalStats(c *gin.Context) {
	stats, err := s.svc.Journal.Stats(c.Request.Context(), userID(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
