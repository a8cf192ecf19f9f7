package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"quickcart/internal/core/application/usecases/queries"
	"quickcart/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SnapshotJob periodically writes the current snapshot to a SnapshotStore.
type SnapshotJob struct {
	handler   queries.GetSnapshotQueryHandler
	snapshots ports.SnapshotStore
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewSnapshotJob(
	handler queries.GetSnapshotQueryHandler,
	snapshots ports.SnapshotStore,
	logger *slog.Logger,
) *SnapshotJob {
	return &SnapshotJob{
		handler:   handler,
		snapshots: snapshots,
		cron:      cron.New(),
		logger:    logger.With("component", "snapshot_job"),
	}
}

// Run saves one snapshot.
func (j *SnapshotJob) Run(ctx context.Context) error {
	snapshot, err := j.handler.Handle(ctx, queries.NewGetSnapshotQuery())
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}
	if err = j.snapshots.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	j.logger.DebugContext(ctx, "Snapshot saved",
		"products", len(snapshot.Products),
		"orders", len(snapshot.Orders))
	return nil
}

// Start schedules Run on spec. An empty spec leaves the job idle.
func (j *SnapshotJob) Start(spec string) error {
	if spec == "" {
		j.logger.InfoContext(context.Background(), "Snapshot job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Snapshot job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started", "schedule", spec)
	return nil
}

// Stop waits for a running save to finish.
func (j *SnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}
