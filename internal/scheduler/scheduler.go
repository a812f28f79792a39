package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cardstudio/internal/service"
)

type Scheduler struct {
	service      *service.CelebrationService
	pollInterval time.Duration
	runAt        runAtTime
	logger       *slog.Logger

	lastRunDay string
}

type runAtTime struct {
	hour   int
	minute int
}

// New builds a scheduler that fires the celebration scan once per local day
// at or after runAt (HH:MM). runAt must already be validated by config.
func New(svc *service.CelebrationService, pollInterval time.Duration, runAt string, logger *slog.Logger) (*Scheduler, error) {
	parsed, err := time.Parse("15:04", runAt)
	if err != nil {
		return nil, fmt.Errorf("parse run-at time %q: %w", runAt, err)
	}

	return &Scheduler{
		service:      svc,
		pollInterval: pollInterval,
		runAt:        runAtTime{hour: parsed.Hour(), minute: parsed.Minute()},
		logger:       logger,
	}, nil
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		slog.Duration("poll_interval", s.pollInterval),
		slog.String("run_at", fmt.Sprintf("%02d:%02d", s.runAt.hour, s.runAt.minute)),
	)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case now := <-ticker.C:
			if !s.shouldRun(now) {
				continue
			}
			s.lastRunDay = dayKey(now)

			summary, err := s.service.Run(ctx, now)
			if err != nil {
				s.logger.Error("scheduled celebration scan failed", slog.String("error", err.Error()))
				continue
			}
			s.logger.Info("scheduled celebration scan complete",
				slog.Int("processed", len(summary.Processed)),
				slog.String("ai_status", summary.AIStatus),
			)
		}
	}
}

// shouldRun reports whether the daily scan is due: the local clock has
// reached the configured run-at time and the scan has not fired today.
func (s *Scheduler) shouldRun(now time.Time) bool {
	if s.lastRunDay == dayKey(now) {
		return false
	}
	due := time.Date(now.Year(), now.Month(), now.Day(), s.runAt.hour, s.runAt.minute, 0, 0, now.Location())
	return !now.Before(due)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
