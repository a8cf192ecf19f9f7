package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	snapshotJob      *SnapshotJob
	snapshotSchedule string
}

func NewJobManager(snapshotJob *SnapshotJob, snapshotSchedule string) *JobManager {
	return &JobManager{
		snapshotJob:      snapshotJob,
		snapshotSchedule: snapshotSchedule,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotJob.Start(jm.snapshotSchedule); err != nil {
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotJob.Stop()
}
