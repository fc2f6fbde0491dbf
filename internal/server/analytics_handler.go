package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) dashboard(c *gin.Context) {
	report, err := s.svc.Analytics.Dashboard(c.Request.Context(), userID(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) productivity(c *gin.Context) {
	report, err := s.svc.Analytics.Productivity(c.Request.Context(), userID(c), queryDays(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
