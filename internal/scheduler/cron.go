package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/models"
)

// Scheduler manages scheduled tasks
type Scheduler struct {
	cron   *cron.Cron
	db     *models.Database
	ttl    time.Duration
	logger *logrus.Logger
}

// NewScheduler creates a new scheduler. ttl is the lifetime of persisted
// detail records; older entries are swept.
func NewScheduler(db *models.Database, ttl time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		db:     db,
		ttl:    ttl,
		logger: logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.Info("Starting scheduler")

	// Every hour: sweep expired detail records from the persistent cache
	_, err := s.cron.AddFunc("0 * * * *", func() {
		s.runCacheSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to add cache sweep job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	// Sweep once at startup so stale entries from a previous run go away
	go s.runCacheSweep()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	s.cron.Stop()
}

// runCacheSweep executes the cache sweep job
func (s *Scheduler) runCacheSweep() {
	s.logger.Debug("Running cache sweep")

	removed, err := s.db.DeleteExpired(s.ttl)
	if err != nil {
		s.logger.WithError(err).Error("Cache sweep failed")
		return
	}
	if removed > 0 {
		s.logger.WithField("removed", removed).Info("Swept expired cache entries")
	}
}
