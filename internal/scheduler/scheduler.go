package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Completer closes out accepted boardings whose last day has passed.
type Completer interface {
	CompleteElapsed(ctx context.Context, now time.Time) (int, error)
}

// Scheduler runs the boarding maintenance job at a fixed interval
type Scheduler struct {
	completer Completer
	logger    *logrus.Logger
	interval  time.Duration
	now       func() time.Time
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	jobMutex  sync.Mutex
}

func NewScheduler(completer Completer, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		completer: completer,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
		stopChan:  make(chan struct{}),
	}
}

// Start runs the job once immediately and then on every tick
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.logger.Info("Running startup boarding maintenance")
	s.RunOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.RunOnce()
		}
	}
}

// RunOnce executes the job, skipping it if a previous run is still going.
func (s *Scheduler) RunOnce() {
	if !s.jobMutex.TryLock() {
		s.logger.Debug("Skipping boarding maintenance, previous run in progress")
		return
	}
	defer s.jobMutex.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	completed, err := s.completer.CompleteElapsed(ctx, s.now())
	if err != nil {
		s.logger.WithError(err).Error("Failed to complete elapsed boarding requests")
		return
	}
	if completed > 0 {
		s.logger.WithField("completed", completed).Info("Completed elapsed boarding requests")
	}
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}
