package matching

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/diconnect/diconnect/internal/domain"
)

// Scheduler triggers matching cycles on cron schedules, one entry per
// frequency. A tick that arrives while the same frequency is still running
// is skipped: pairing a team twice in one window is worse than a late run.
type Scheduler struct {
	runner *Runner
	cron   *cron.Cron
	log    logrus.FieldLogger

	mu      sync.Mutex
	running map[domain.MatchingFrequency]bool
}

// NewScheduler creates a scheduler for the given cron specs (standard
// five-field format).
func NewScheduler(runner *Runner, weeklySpec, monthlySpec string, log logrus.FieldLogger) (*Scheduler, error) {
	s := &Scheduler{
		runner:  runner,
		cron:    cron.New(),
		log:     log,
		running: make(map[domain.MatchingFrequency]bool),
	}

	if _, err := s.cron.AddFunc(weeklySpec, func() { s.tick(domain.FrequencyWeekly) }); err != nil {
		return nil, fmt.Errorf("invalid weekly cron expression %q: %w", weeklySpec, err)
	}
	if _, err := s.cron.AddFunc(monthlySpec, func() { s.tick(domain.FrequencyMonthly) }); err != nil {
		return nil, fmt.Errorf("invalid monthly cron expression %q: %w", monthlySpec, err)
	}

	return s, nil
}

// Start begins scheduling in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for any in-flight cron invocation.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) tick(frequency domain.MatchingFrequency) {
	s.mu.Lock()
	if s.running[frequency] {
		s.mu.Unlock()
		s.log.Warnf("skipping %s matching tick: previous run still in progress", frequency)
		return
	}
	s.running[frequency] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running[frequency] = false
		s.mu.Unlock()
	}()

	if _, err := s.runner.RunCycle(context.Background(), frequency); err != nil {
		s.log.WithError(err).Errorf("%s matching cycle failed", frequency)
	}
}
