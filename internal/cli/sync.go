package cli

import (
	"context"
	"fmt"
	"time"
)

// Execute implements the go-flags Commander interface for SyncCommand.
func (c *SyncCommand) Execute(args []string) error {
	cfg, cfgPath, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	if c.From != "" {
		if _, err := time.Parse("2006-01-02", c.From); err != nil {
			return fmt.Errorf("invalid --from date %q: %w", c.From, err)
		}
		cfg.FromDate = c.From
	}

	log := newLogger(cfg, c.globals)
	defer log.Sync() //nolint:errcheck

	s, err := newSynchronizer(cfg, cfgPath, log)
	if err != nil {
		return err
	}

	report, err := s.Sync(context.Background())
	if err != nil {
		return err
	}

	if len(report.Touched) == 0 {
		fmt.Println("No notes to sync.")
	} else {
		fmt.Printf("Synced %d notes:\n", len(report.Touched))
		for _, path := range report.Touched {
			fmt.Printf("  %s\n", path)
		}
	}

	if len(report.Failures) > 0 {
		fmt.Printf("%d days failed, they will not be retried until the next sync.\n", len(report.Failures))
	}

	return nil
}
