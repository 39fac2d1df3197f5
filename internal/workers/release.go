package workers

import (
	"context"
	"time"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/service"
)

// releaseWorker periodically releases every eligible time capsule:
// IMMEDIATE on the first sweep after creation, ON_DATE once the moment
// passes, ON_DEATH once the owner's case is FINAL.
type releaseWorker struct {
	capsuleService service.CapsuleService
	interval       time.Duration
	logger         *logger.Logger
}

// NewReleaseWorker constructs the capsule release scheduler ticking at
// the given interval.
func NewReleaseWorker(capsuleService service.CapsuleService, interval time.Duration, log *logger.Logger) Worker {
	return &releaseWorker{
		capsuleService: capsuleService,
		interval:       interval,
		logger:         &logger.Logger{Logger: log.With().Str("worker", "release").Logger()},
	}
}

// Run starts the sweep loop in its own goroutine.
func (w *releaseWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

func (w *releaseWorker) loop(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)
	w.logger.Info().Dur("interval", w.interval).Msg("release worker started")

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("release worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *releaseWorker) sweep(ctx context.Context) {
	released, err := w.capsuleService.ReleaseEligibleCapsules(ctx, time.Now())
	if err != nil {
		w.logger.Err(err).Msg("release sweep failed")
		return
	}
	if released > 0 {
		w.logger.Info().Int("released", released).Msg("release sweep released capsules")
	}
}
