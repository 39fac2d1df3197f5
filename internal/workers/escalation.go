package workers

import (
	"context"
	"time"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/service"
)

// escalationWorker periodically finalizes CONFIRMED cases whose waiting
// period has elapsed. The first sweep runs immediately on start so a
// restart never extends anyone's waiting period.
type escalationWorker struct {
	caseService service.CaseService
	interval    time.Duration
	logger      *logger.Logger
}

// NewEscalationWorker constructs the escalation sweeper ticking at the
// given interval.
func NewEscalationWorker(caseService service.CaseService, interval time.Duration, log *logger.Logger) Worker {
	return &escalationWorker{
		caseService: caseService,
		interval:    interval,
		logger:      &logger.Logger{Logger: log.With().Str("worker", "escalation").Logger()},
	}
}

// Run starts the sweep loop in its own goroutine.
func (w *escalationWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

func (w *escalationWorker) loop(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)
	w.logger.Info().Dur("interval", w.interval).Msg("escalation worker started")

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("escalation worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *escalationWorker) sweep(ctx context.Context) {
	finalized, err := w.caseService.EscalateDueCases(ctx, time.Now())
	if err != nil {
		w.logger.Err(err).Msg("escalation sweep failed")
		return
	}
	if finalized > 0 {
		w.logger.Info().Int("finalized", finalized).Msg("escalation sweep finalized cases")
	}
}
