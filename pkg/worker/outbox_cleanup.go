package worker

import (
	"context"
	"time"

	"github.com/jwalitptl/carehub-api/internal/repository"
	"github.com/jwalitptl/carehub-api/pkg/logger"
)

// OutboxCleanupWorker drops processed events once they are older than the
// retention window. Pending and failed events are never removed.
type OutboxCleanupWorker struct {
	repo      repository.OutboxRepository
	retention time.Duration
	interval  time.Duration
	logger    *logger.Logger
	now       func() time.Time
}

func NewOutboxCleanupWorker(repo repository.OutboxRepository, retention, interval time.Duration, log *logger.Logger) *OutboxCleanupWorker {
	return &OutboxCleanupWorker{
		repo:      repo,
		retention: retention,
		interval:  interval,
		logger:    log.With("outbox_cleanup"),
		now:       time.Now,
	}
}

func (w *OutboxCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Cleanup(ctx)
		}
	}
}

// Cleanup runs one pruning pass and returns the number of events removed.
func (w *OutboxCleanupWorker) Cleanup(ctx context.Context) int64 {
	cutoff := w.now().Add(-w.retention)
	removed, err := w.repo.DeleteProcessedBefore(ctx, cutoff)
	if err != nil {
		w.logger.Error(err, "Failed to prune outbox")
		return 0
	}
	if removed > 0 {
		w.logger.Info("Pruned outbox", "removed", removed)
	}
	return removed
}
