// Package jobs runs the scheduled dataset refresh.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/simrs-budget/backend/internal/application/usecase/dataset"
)

// RefreshScheduler re-runs the drive load cycle on a cron schedule so the
// dashboard tracks the shared exports without manual reloads.
type RefreshScheduler struct {
	cron        *cron.Cron
	loadUseCase *dataset.LoadDatasetUseCase
	schedule    string
	timeout     time.Duration
}

// NewRefreshScheduler creates a new RefreshScheduler instance. schedule is a
// standard five-field cron expression evaluated in the given timezone.
func NewRefreshScheduler(
	loadUseCase *dataset.LoadDatasetUseCase,
	schedule string,
	timezone string,
	timeout time.Duration,
) (*RefreshScheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh timezone %q: %w", timezone, err)
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	return &RefreshScheduler{
		cron:        cron.New(cron.WithLocation(loc)),
		loadUseCase: loadUseCase,
		schedule:    schedule,
		timeout:     timeout,
	}, nil
}

// Start registers and starts the refresh job. A failed cycle logs and leaves
// the previous snapshot in place; the next tick tries again.
func (s *RefreshScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		started := time.Now()
		output, err := s.loadUseCase.Execute(ctx, dataset.LoadDatasetInput{Force: true})
		if err != nil {
			slog.Error("Scheduled dataset refresh failed", "error", err)
			return
		}

		slog.Info("Scheduled dataset refresh completed",
			"duration", time.Since(started).String(),
			"allocations", len(output.Dataset.Allocations),
			"transactions", len(output.Dataset.Transactions),
		)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule dataset refresh: %w", err)
	}

	s.cron.Start()
	slog.Info("Dataset refresh scheduled", "schedule", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *RefreshScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
