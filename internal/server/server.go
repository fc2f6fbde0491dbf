package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"studydesk/internal/analytics"
	"studydesk/internal/auth"
	"studydesk/internal/config"
	"studydesk/internal/model"
	"studydesk/internal/service"
)

// Services groups the per-domain services the server dispatches to.
type Services struct {
	Auth      *service.AuthService
	Calendar  *service.CalendarService
	Mood      *service.MoodService
	Journal   *service.JournalService
	Goals     *service.GoalService
	Study     *service.StudyService
	Blog      *service.BlogService
	Alarms    *service.AlarmService
	Documents *service.DocumentService
	Analytics *service.AnalyticsService
}

// Server is the gin HTTP transport in front of the services.
type Server struct {
	cfg    config.Config
	log    zerolog.Logger
	tokens *auth.Manager
	svc    Services
	engine *gin.Engine
}

// New builds the router with middleware, validators and all routes
// registered.
func New(cfg config.Config, log zerolog.Logger, tokens *auth.Manager, svc Services) *Server {
	s := &Server{cfg: cfg, log: log, tokens: tokens, svc: svc}

	registerValidators()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(s.requestLogger(), gin.Recovery(), metricsMiddleware())

	corsCfg := cors.DefaultConfig()
	if cfg.AllowedOrigin == "" || cfg.AllowedOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.AllowedOrigin}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	engine.Use(cors.New(corsCfg))

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.Static("/uploads", cfg.UploadDir)

	api := engine.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", s.signup)
	authGroup.POST("/login", s.login)
	authGroup.POST("/forgot-password", s.forgotPassword)
	authGroup.POST("/reset-password", s.resetPassword)

	protected := api.Group("", s.requireAuth())
	{
		protected.GET("/auth/profile", s.profile)
		protected.PUT("/auth/profile", s.updateProfile)
		protected.POST("/auth/change-password", s.changePassword)

		calendar := protected.Group("/calendar")
		calendar.GET("/events", s.listEvents)
		calendar.POST("/events", s.createEvent)
		calendar.POST("/events/bulk", s.bulkCreateEvents)
		calendar.GET("/events/search", s.searchEvents)
		calendar.GET("/events/:id", s.getEvent)
		calendar.PUT("/events/:id", s.updateEvent)
		calendar.DELETE("/events/:id", s.deleteEvent)

		mood := protected.Group("/mood")
		mood.GET("/entries", s.listMoodEntries)
		mood.POST("/entries", s.createMoodEntry)
		mood.GET("/entries/:id", s.getMoodEntry)
		mood.PUT("/entries/:id", s.updateMoodEntry)
		mood.DELETE("/entries/:id", s.deleteMoodEntry)
		mood.GET("/analytics", s.moodAnalytics)
		mood.GET("/today", s.moodToday)
		mood.GET("/streak", s.moodStreak)

		journal := protected.Group("/journal")
		journal.GET("/entries", s.listJournalEntries)
		journal.POST("/entries", s.createJournalEntry)
		journal.GET("/entries/:id", s.getJournalEntry)
		journal.PUT("/entries/:id", s.updateJournalEntry)
		journal.DELETE("/entries/:id", s.deleteJournalEntry)
		journal.GET("/search", s.searchJournal)
		journal.GET("/stats", s.journalStats)

		goals := protected.Group("/goals")
		goals.GET("/goals", s.listGoals)
		goals.POST("/goals", s.createGoal)
		goals.GET("/goals/:id", s.getGoal)
		goals.PUT("/goals/:id", s.updateGoal)
		goals.DELETE("/goals/:id", s.deleteGoal)
		goals.PUT("/goals/:id/progress", s.updateGoalProgress)
		goals.GET("/stats", s.goalStats)
		goals.GET("/categories", s.goalCategories)

		study := protected.Group("/study")
		study.GET("/sessions", s.listStudySessions)
		study.POST("/sessions", s.createStudySession)
		study.GET("/sessions/:id", s.getStudySession)
		study.PUT("/sessions/:id", s.updateStudySession)
		study.DELETE("/sessions/:id", s.deleteStudySession)
		study.GET("/analytics", s.studyAnalytics)
		study.GET("/stats", s.studyStats)

		blog := protected.Group("/blog")
		blog.GET("/posts", s.listBlogPosts)
		blog.POST("/posts", s.createBlogPost)
		blog.GET("/posts/:id", s.getBlogPost)
		blog.PUT("/posts/:id", s.updateBlogPost)
		blog.DELETE("/posts/:id", s.deleteBlogPost)

		alarms := protected.Group("/alarms")
		alarms.GET("/alarms", s.listAlarms)
		alarms.POST("/alarms", s.createAlarm)
		alarms.GET("/alarms/:id", s.getAlarm)
		alarms.PUT("/alarms/:id", s.updateAlarm)
		alarms.DELETE("/alarms/:id", s.deleteAlarm)
		alarms.PUT("/alarms/:id/toggle", s.toggleAlarm)
		alarms.GET("/upcoming", s.upcomingAlarms)
		alarms.GET("/stats", s.alarmStats)

		documents := protected.Group("/documents")
		documents.GET("/documents", s.listDocuments)
		documents.POST("/upload", s.uploadDocument)
		documents.GET("/documents/:id", s.getDocument)
		documents.PUT("/documents/:id", s.updateDocument)
		documents.DELETE("/documents/:id", s.deleteDocument)
		documents.GET("/download/:id", s.downloadDocument)
		documents.GET("/categories", s.documentCategories)
		documents.GET("/stats", s.documentStats)

		protected.GET("/analytics/dashboard", s.dashboard)
		protected.GET("/analytics/productivity", s.productivity)
	}

	s.engine = engine
	return s
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// registerValidators adds the custom binding checks: "clock" for
// HH:MM values and "mood" for the recognized mood categories.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := analytics.ParseClock(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return model.ValidMood(fl.Field().String())
	})
}
