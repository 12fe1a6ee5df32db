package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StaleDeleter removes abandoned in_progress sessions older than a
// cutoff and reports how many were purged.
type StaleDeleter interface {
	DeleteStale(before time.Time) (int64, error)
}

// CleanupConfig contains configuration for the cleanup job
type CleanupConfig struct {
	Schedule  string        // cron schedule (e.g. "0 3 * * *" for 3 AM daily)
	Retention time.Duration // how long an untouched in_progress session survives
	Enabled   bool
}

// CleanupJob periodically purges sessions that were started and then
// abandoned without ever being evaluated.
type CleanupJob struct {
	store  StaleDeleter
	config *CleanupConfig
	logger *zap.Logger
	cron   *cron.Cron
}

func NewCleanupJob(store StaleDeleter, config *CleanupConfig, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		store:  store,
		config: config,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start begins the scheduled cleanup job
func (j *CleanupJob) Start() error {
	if !j.config.Enabled {
		j.logger.Info("session cleanup is disabled, skipping scheduler")
		return nil
	}

	if _, err := j.cron.AddFunc(j.config.Schedule, j.RunOnce); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("session cleanup scheduled", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop halts the scheduler, waiting for a running purge to finish.
func (j *CleanupJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// RunOnce performs a single purge pass.
func (j *CleanupJob) RunOnce() {
	cutoff := time.Now().Add(-j.config.Retention)
	removed, err := j.store.DeleteStale(cutoff)
	if err != nil {
		j.logger.Error("session cleanup failed", zap.Error(err))
		return
	}
	if removed > 0 {
		j.logger.Info("purged stale sessions",
			zap.Int64("removed", removed),
			zap.Time("cutoff", cutoff))
	}
}
