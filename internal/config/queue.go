package config

import (
	"errors"
	"time"
)

type QueueConfig struct {
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	URL            string        `mapstructure:"url"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
	MaxRetryTimes  uint          `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.User == "" {
		return errors.New("missing queue user")
	}

	if cfg.Password == "" {
		return errors.New("missing queue password")
	}

	if cfg.URL == "" {
		return errors.New("missing queue url")
	}

	if cfg.PublishTimeout <= 0 {
		return errors.New("publish-timeout must be positive")
	}

	if cfg.MaxRetryTimes == 0 {
		return errors.New("max-retry-times must be positive")
	}

	if cfg.RetryInterval <= 0 {
		return errors.New("retry-interval must be positive")
	}

	return nil
}
