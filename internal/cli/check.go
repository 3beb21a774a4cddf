package cli

import "context"

// Execute implements the go-flags Commander interface for CheckCommand.
// The connection report itself is surfaced through the notifier.
func (c *CheckCommand) Execute(args []string) error {
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

	_, err = s.CheckConnection(context.Background())
	return err
}
