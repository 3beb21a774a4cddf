// Package scheduler drives periodic auto-sync runs for the watch daemon.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/runnerr0/histnote/internal/logger"
)

// AutoSync runs a job on a fixed interval. A tick firing while the
// previous run is still in flight is skipped, not queued.
type AutoSync struct {
	cron *cron.Cron
	log  logger.Logger
}

// New returns an AutoSync with no jobs scheduled yet.
func New(log logger.Logger) *AutoSync {
	if log == nil {
		log = logger.Nop()
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	return &AutoSync{cron: c, log: log}
}

// Add schedules job to run every interval once Start is called. The cron
// scheduler rounds intervals down to whole seconds, with a one second
// floor.
func (a *AutoSync) Add(interval time.Duration, job func()) {
	a.cron.Schedule(cron.Every(interval), cron.FuncJob(job))
	a.log.Info("auto-sync scheduled", logger.String("interval", interval.String()))
}

// Start begins scheduling in its own goroutine.
func (a *AutoSync) Start() {
	a.cron.Start()
}

// Stop stops scheduling and waits for an in-flight job to finish.
func (a *AutoSync) Stop() {
	ctx := a.cron.Stop()
	<-ctx.Done()
	a.log.Info("auto-sync stopped")
}
