package scheduler

import (
	"context"
	"log/slog"
	"time"

	"filing_watcher/internal/domain"
)

// Ingestor defines the interface for ingestion passes.
type Ingestor interface {
	Run(ctx context.Context) (*domain.IngestStats, error)
}

type Scheduler struct {
	ingestor    Ingestor
	interval    time.Duration
	passTimeout time.Duration
	logger      *slog.Logger
}

func NewScheduler(ingestor Ingestor, interval, passTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		ingestor:    ingestor,
		interval:    interval,
		passTimeout: passTimeout,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *Scheduler) runPass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, s.passTimeout)
	defer cancel()

	if _, err := s.ingestor.Run(passCtx); err != nil {
		s.logger.Error("ingestion pass failed", "error", err)
	}
}
