// Package scheduler optionally runs a periodic corpus reindex on a cron
// schedule. Grounded on the teacher's
// internal/services/scheduler/scheduler_service.go, stripped to the one
// job this binary needs: no KV-persisted job definitions, no stale-job
// detection, no crawler-shutdown coordination.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
)

// Service wraps robfig/cron to run a single reindex job on a schedule.
// Disabled (no entries registered) unless Start is called with a
// non-empty expression.
type Service struct {
	cron    *cron.Cron
	logger  arbor.ILogger
	mu      sync.Mutex
	running bool
}

// New returns a Service ready to Start.
func New(logger arbor.ILogger) *Service {
	return &Service{cron: cron.New(), logger: logger}
}

// Start registers handler to run on cronExpr and starts the scheduler.
// An empty cronExpr is a no-op - the server runs with reindex available
// only on-demand via the reindex tool, matching the teacher's default
// pattern of opt-in scheduling.
func (s *Service) Start(cronExpr string, handler func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cronExpr == "" {
		return nil
	}
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	_, err := s.cron.AddFunc(cronExpr, func() {
		start := time.Now()
		if err := handler(); err != nil {
			s.logger.Error().Err(err).Msg("scheduled reindex failed")
			return
		}
		s.logger.Info().Dur("duration", time.Since(start)).Msg("scheduled reindex complete")
	})
	if err != nil {
		return fmt.Errorf("invalid reindex schedule %q: %w", cronExpr, err)
	}

	s.cron.Start()
	s.running = true
	return nil
}

// Stop halts the scheduler, waiting for any in-flight job to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
}
