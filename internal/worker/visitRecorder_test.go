package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/atinyakov/tinyapp/internal/models"
	"github.com/atinyakov/tinyapp/internal/worker"
)

type MockRepo struct {
	mu     sync.Mutex
	Calls  [][]models.Visit
	FailOn int
}

func (m *MockRepo) RecordVisits(_ context.Context, visits []models.Visit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	batch := make([]models.Visit, len(visits))
	copy(batch, visits)
	m.Calls = append(m.Calls, batch)
	if len(m.Calls) == m.FailOn {
		return errors.New("forced failure")
	}
	return nil
}

func (m *MockRepo) calls() [][]models.Visit {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]models.Visit(nil), m.Calls...)
}

func TestVisitRecorder_BatchTrigger(t *testing.T) {
	repo := &MockRepo{}
	w := worker.NewVisitRecorder(zap.NewNop(), repo, time.Hour)
	in := w.GetInChannel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for i := 0; i < worker.BatchSize+1; i++ {
		in <- models.Visit{Short: "abc123", VisitorID: "v"}
	}

	require.Eventually(t, func() bool { return len(repo.calls()) == 1 }, time.Second, 10*time.Millisecond)
	require.Len(t, repo.calls()[0], worker.BatchSize+1)
}

func TestVisitRecorder_TimerTrigger(t *testing.T) {
	repo := &MockRepo{}
	w := worker.NewVisitRecorder(zap.NewNop(), repo, 50*time.Millisecond)
	in := w.GetInChannel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	in <- models.Visit{Short: "abc123", VisitorID: "v1"}
	in <- models.Visit{Short: "def456", VisitorID: "v2"}

	require.Eventually(t, func() bool {
		total := 0
		for _, c := range repo.calls() {
			total += len(c)
		}
		return total == 2
	}, time.Second, 10*time.Millisecond)
}

func TestVisitRecorder_FlushOnCancel(t *testing.T) {
	repo := &MockRepo{}
	w := worker.NewVisitRecorder(zap.NewNop(), repo, time.Hour)
	in := w.GetInChannel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		in <- models.Visit{Short: "abc123", VisitorID: "v"}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("recorder did not stop")
	}

	calls := repo.calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 3)
}

func TestVisitRecorder_ErrorClearsBuffer(t *testing.T) {
	repo := &MockRepo{FailOn: 1}
	core, logs := observer.New(zapcore.ErrorLevel)
	w := worker.NewVisitRecorder(zap.New(core), repo, time.Hour)
	in := w.GetInChannel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for i := 0; i < 30; i++ {
		in <- models.Visit{Short: "abc123", VisitorID: "v"}
	}

	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, 10*time.Millisecond)
	require.Equal(t, "cannot record visits", logs.All()[0].Message)

	calls := repo.calls()
	require.GreaterOrEqual(t, len(calls), 1)
	require.Len(t, calls[0], worker.BatchSize+1)
}
