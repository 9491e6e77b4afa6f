package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/KarinaMa20040822/starwish/backend/internal/store"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

// retentionDays is how long fortune snapshots are kept.
const retentionDays = 90

// FortuneCleanupJob purges old fortune snapshots.
type FortuneCleanupJob struct {
	fortunes *store.FortuneRepository
	logger   *logger.Logger
}

// NewFortuneCleanupJob creates the cleanup job.
func NewFortuneCleanupJob(repo *store.FortuneRepository, log *logger.Logger) *FortuneCleanupJob {
	return &FortuneCleanupJob{fortunes: repo, logger: log}
}

// Name returns the job name.
func (j *FortuneCleanupJob) Name() string {
	return "fortune_cleanup"
}

// Schedule runs every day at 04:30, before the morning sweep.
func (j *FortuneCleanupJob) Schedule() string {
	return "0 30 4 * * *"
}

// Run deletes snapshots older than the retention window.
func (j *FortuneCleanupJob) Run(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	deleted, err := j.fortunes.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge fortune snapshots: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"deleted": deleted,
		"cutoff":  cutoff.Format("2006-01-02"),
	}).Info("Fortune snapshot cleanup finished")
	return nil
}
