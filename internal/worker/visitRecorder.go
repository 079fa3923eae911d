// Package worker contains background workers that persist events produced by
// request handlers.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/models"
)

// BatchSize is the number of buffered visits above which a flush is forced.
const BatchSize = 25

type Repo interface {
	RecordVisits(context.Context, []models.Visit) error
}

// VisitRecorder collects visits from a channel and writes them to the
// registry in batches.
type VisitRecorder struct {
	in       chan models.Visit
	logger   *zap.Logger
	repo     Repo
	interval time.Duration
}

func NewVisitRecorder(logger *zap.Logger, repo Repo, interval time.Duration) *VisitRecorder {
	return &VisitRecorder{
		in:       make(chan models.Visit),
		logger:   logger,
		repo:     repo,
		interval: interval,
	}
}

func (s *VisitRecorder) GetInChannel() chan<- models.Visit {
	return s.in
}

// Run flushes buffered visits when the batch grows past BatchSize or on every
// tick. When ctx is cancelled it drains pending sends, flushes and returns.
func (s *VisitRecorder) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var visits []models.Visit

	flush := func() {
		if len(visits) == 0 {
			return
		}
		s.logger.Debug("flushing visits", zap.Int("count", len(visits)))

		fctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.repo.RecordVisits(fctx, visits); err != nil {
			s.logger.Error("cannot record visits", zap.Error(err))
		}
		visits = visits[:0]
	}

	for {
		select {
		case v := <-s.in:
			visits = append(visits, v)
			if len(visits) > BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			for {
				select {
				case v := <-s.in:
					visits = append(visits, v)
				default:
					flush()
					s.logger.Info("visit recorder stopped")
					return
				}
			}
		}
	}
}
