package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"filing_watcher/internal/domain"
)

type countingIngestor struct {
	runs atomic.Int32
}

func (c *countingIngestor) Run(ctx context.Context) (*domain.IngestStats, error) {
	c.runs.Add(1)
	return &domain.IngestStats{}, nil
}

func TestScheduler_RunsImmediatelyThenOnTicks(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	ingestor := &countingIngestor{}

	sched := NewScheduler(ingestor, 20*time.Millisecond, time.Second, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	err := sched.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// one immediate pass plus at least one tick
	assert.GreaterOrEqual(t, ingestor.runs.Load(), int32(2))
}
