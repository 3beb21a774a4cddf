package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runnerr0/histnote/internal/logger"
	"github.com/runnerr0/histnote/internal/notesync"
	"github.com/runnerr0/histnote/internal/scheduler"
)

// Execute implements the go-flags Commander interface for WatchCommand.
// It runs until SIGINT or SIGTERM, syncing on the configured interval.
// Each tick reloads the config so a watermark advanced by the previous
// tick (or edited by the user) is always honored.
func (c *WatchCommand) Execute(args []string) error {
	cfg, cfgPath, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	interval, err := syncInterval(c.Interval, cfg)
	if err != nil {
		return err
	}

	log := newLogger(cfg, c.globals)
	defer log.Sync() //nolint:errcheck

	runSync := func() {
		tickCfg, _, err := resolveConfig(c.globals)
		if err != nil {
			log.Error("reload config", logger.Error(err))
			return
		}
		s, err := newSynchronizer(tickCfg, cfgPath, log)
		if err != nil {
			log.Error("build synchronizer", logger.Error(err))
			return
		}
		if _, err := s.Sync(context.Background()); err != nil && !errors.Is(err, notesync.ErrSyncInFlight) {
			log.Error("auto-sync failed", logger.Error(err))
		}
	}

	if cfg.SyncOnStartup {
		runSync()
	}

	auto := scheduler.New(log)
	auto.Add(interval, runSync)
	auto.Start()

	fmt.Printf("Watching, syncing every %s. Ctrl-C to stop.\n", interval)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	auto.Stop()
	return nil
}
