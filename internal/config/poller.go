package config

import (
	"errors"
	"time"
)

type PollerConfig struct {
	// SweepEnabled turns on the scheduled batch distribution run as the
	// administrator identity.
	SweepEnabled        bool          `mapstructure:"sweep-enabled"`
	SweepInterval       time.Duration `mapstructure:"sweep-interval"`
	SnapshotConcurrency int           `mapstructure:"snapshot-concurrency"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.SweepEnabled && cfg.SweepInterval <= 0 {
		return errors.New("sweep-interval must be positive when sweep is enabled")
	}

	if cfg.SnapshotConcurrency <= 0 {
		return errors.New("snapshot-concurrency must be positive")
	}

	return nil
}
