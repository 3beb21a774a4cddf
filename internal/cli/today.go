package cli

import (
	"context"
	"fmt"
	"time"
)

// Execute implements the go-flags Commander interface for TodayCommand.
func (c *TodayCommand) Execute(args []string) error {
	cfg, cfgPath, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	log := newLogger(cfg, c.globals)
	defer log.Sync() //nolint:errcheck

	s, err := newSynchronizer(cfg, cfgPath, log)
	if err != nil {
		return err
	}

	path, err := s.SyncOne(context.Background(), time.Now())
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Println("No history for today.")
		return nil
	}

	fmt.Println(path)
	return nil
}
