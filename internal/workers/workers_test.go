package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/mock"
	"go.uber.org/mock/gomock"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(_ context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestEscalationWorker_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	cases := mock.NewMockCaseService(ctrl)
	cases.EXPECT().EscalateDueCases(gomock.Any(), gomock.Any()).Return(2, nil)

	w := &escalationWorker{
		caseService: cases,
		interval:    time.Hour,
		logger:      logger.Nop(),
	}
	w.sweep(context.Background())
}

func TestEscalationWorker_SweepErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	cases := mock.NewMockCaseService(ctrl)
	cases.EXPECT().EscalateDueCases(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	w := &escalationWorker{
		caseService: cases,
		interval:    time.Hour,
		logger:      logger.Nop(),
	}

	// The loop must survive a failed sweep; only the sweep logs.
	w.sweep(context.Background())
}

func TestEscalationWorker_RunSweepsEagerly(t *testing.T) {
	ctrl := gomock.NewController(t)
	swept := make(chan struct{}, 1)

	cases := mock.NewMockCaseService(ctrl)
	cases.EXPECT().EscalateDueCases(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time) (int, error) {
			swept <- struct{}{}
			return 0, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewEscalationWorker(cases, time.Hour, logger.Nop())
	w.Run(ctx)

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate sweep on start")
	}
}

func TestReleaseWorker_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := mock.NewMockCapsuleService(ctrl)
	capsules.EXPECT().ReleaseEligibleCapsules(gomock.Any(), gomock.Any()).Return(1, nil)

	w := &releaseWorker{
		capsuleService: capsules,
		interval:       time.Hour,
		logger:         logger.Nop(),
	}
	w.sweep(context.Background())
}

func TestReleaseWorker_RunSweepsEagerly(t *testing.T) {
	ctrl := gomock.NewController(t)
	swept := make(chan struct{}, 1)

	capsules := mock.NewMockCapsuleService(ctrl)
	capsules.EXPECT().ReleaseEligibleCapsules(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time) (int, error) {
			swept <- struct{}{}
			return 0, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewReleaseWorker(capsules, time.Hour, logger.Nop())
	w.Run(ctx)

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate sweep on start")
	}
}
