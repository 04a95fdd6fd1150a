package config

import (
	"errors"
	"time"
)

type LedgerConfig struct {
	// RewardPerTick is the total reward minted per elapsed tick across all
	// stakers combined, not per staker.
	RewardPerTick uint64        `mapstructure:"reward-per-tick"`
	AdminAddress  string        `mapstructure:"admin-address"`
	GenesisTime   time.Time     `mapstructure:"genesis-time"`
	TickInterval  time.Duration `mapstructure:"tick-interval"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.RewardPerTick == 0 {
		return errors.New("reward-per-tick must be positive")
	}

	if cfg.AdminAddress == "" {
		return errors.New("admin-address must be set")
	}

	if cfg.GenesisTime.IsZero() {
		return errors.New("genesis-time must be set")
	}

	if cfg.TickInterval <= 0 {
		return errors.New("tick-interval must be positive")
	}

	return nil
}
