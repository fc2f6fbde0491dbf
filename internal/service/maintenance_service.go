package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"studydesk/internal/metrics"
	"studydesk/internal/repository"
)

// MaintenanceService runs the off-request housekeeping jobs.
type MaintenanceService struct {
	resets *repository.PasswordResetRepository
	log    zerolog.Logger
}

func NewMaintenanceService(resets *repository.PasswordResetRepository, log zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{resets: resets, log: log}
}

// PurgeExpiredResets drops password reset tokens that expired or were
// already consumed. Meant to run on the scheduler.
func (s *MaintenanceService) PurgeExpiredResets(ctx context.Context, now time.Time) {
	purged, err := s.resets.PurgeExpired(ctx, now)
	if err != nil {
		s.log.Error().Err(err).Msg("purge expired reset tokens")
		return
	}
	if purged > 0 {
		metrics.ResetTokensPurged.Add(float64(purged))
		s.log.Info().Int64("purged", purged).Msg("expired reset tokens removed")
	}
}
