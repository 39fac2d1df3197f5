package workers

import (
	"context"

	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/service"
)

// Workers aggregates every background worker of the engine.
type Workers struct {
	workers []Worker
}

// NewWorkers wires the escalation sweeper and the capsule release
// scheduler on top of the given services.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewEscalationWorker(services.CaseService, cfg.EscalationInterval, logger),
			NewReleaseWorker(services.CapsuleService, cfg.ReleaseInterval, logger),
		},
	}
}

// Run starts every worker. Each worker stops when ctx is canceled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
