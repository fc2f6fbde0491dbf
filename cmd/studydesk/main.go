package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"studydesk/internal/auth"
	"studydesk/internal/config"
	"studydesk/internal/mail"
	"studydesk/internal/repository"
	"studydesk/internal/server"
	"studydesk/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("config")
	}

	log := newLogger(cfg)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	studyRepo := repository.NewStudyRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	alarmRepo := repository.NewAlarmRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	var mailer mail.Mailer
	if cfg.SMTPConfigured() {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		mailer = mail.NewLogMailer(log)
	}

	services := server.Services{
		Auth:      service.NewAuthService(userRepo, resetRepo, tokens, mailer, cfg.ResetTokenTTL, cfg.ResetBaseURL, log),
		Calendar:  service.NewCalendarService(calendarRepo),
		Mood:      service.NewMoodService(moodRepo),
		Journal:   service.NewJournalService(journalRepo),
		Goals:     service.NewGoalService(goalRepo),
		Study:     service.NewStudyService(studyRepo),
		Blog:      service.NewBlogService(blogRepo),
		Alarms:    service.NewAlarmService(alarmRepo),
		Documents: service.NewDocumentService(documentRepo, cfg.UploadDir, cfg.MaxUploadSize),
		Analytics: service.NewAnalyticsService(calendarRepo, moodRepo, journalRepo, goalRepo, studyRepo, blogRepo, alarmRepo, documentRepo),
	}

	maintenance := service.NewMaintenanceService(resetRepo, log)
	scheduler := service.NewSchedulerService(time.UTC)
	if _, err := scheduler.ScheduleInterval(cfg.PurgeInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		maintenance.PurgeExpiredResets(jobCtx, time.Now().UTC())
	}); err != nil {
		log.Fatal().Err(err).Msg("schedule reset purge")
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg, log, tokens, services).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("studydesk listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("shutdown complete")
}

func newLogger(cfg config.Config) zerolog.Logger {
	var out = zerolog.New(os.Stdout)
	if cfg.LogPretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return out.With().Timestamp().Logger()
}
