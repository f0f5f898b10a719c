// Package scheduler triggers periodic fetch passes on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/spacenexus/nexusfeed/pkg/aggregator"
	"github.com/spacenexus/nexusfeed/pkg/domain"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner runs a single fetch pass over all active sources
type Runner interface {
	FetchAll(ctx context.Context) (domain.FetchResult, error)
}

// Config holds scheduler configuration
type Config struct {
	Schedule   string // standard 5-field cron expression or descriptor like @hourly
	RunOnStart bool   // run a pass immediately, before the first scheduled tick
}

// Scheduler manages periodic fetch passes
type Scheduler struct {
	runner     Runner
	schedule   cron.Schedule
	expr       string
	runOnStart bool

	cron   *cron.Cron
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler, the schedule is parsed up front
func NewScheduler(runner Runner, cfg Config) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(cfg.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", cfg.Schedule, err)
	}
	return &Scheduler{runner: runner, schedule: schedule, expr: cfg.Schedule, runOnStart: cfg.RunOnStart}, nil
}

// Start begins the scheduler. Passes run with ctx until Stop is called or ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.cron = cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	s.cron.Schedule(s.schedule, cron.FuncJob(func() { s.runPass(ctx) }))
	s.cron.Start()

	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runPass(ctx)
		}()
	}

	lgr.Printf("[INFO] scheduler started with schedule %q", s.expr)
}

// Stop cancels in-flight passes and waits for them to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) runPass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	res, err := s.runner.FetchAll(ctx)
	switch {
	case errors.Is(err, aggregator.ErrRunInProgress):
		lgr.Printf("[INFO] scheduled fetch skipped, previous pass still running")
	case err != nil:
		lgr.Printf("[ERROR] scheduled fetch failed: %v", err)
	default:
		lgr.Printf("[DEBUG] scheduled fetch %s done, saved %d", res.RunID, res.Saved)
	}
}
