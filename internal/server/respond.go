package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studydesk/internal/auth"
	"studydesk/internal/service"
)

// userID returns the authenticated user set by requireAuth.
func userID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

// pathID parses the :id path parameter. A false return means the
// response was already written.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// queryDays reads the days window parameter, defaulting to 30.
func queryDays(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		return 30
	}
	return days
}

// queryTime parses an optional RFC 3339 or date-only query parameter.
func queryTime(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
	return nil, false
}

// fail maps service errors onto the error contract: 404 for missing
// or foreign rows, 4xx for the known domain errors, 500 otherwise.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrResetTokenInvalid),
		errors.Is(err, service.ErrUnsupportedFile),
		errors.Is(err, service.ErrUploadTooLarge),
		errors.Is(err, auth.ErrPasswordPolicy):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// badRequest reports a binding or validation failure.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
