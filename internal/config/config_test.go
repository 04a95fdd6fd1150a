package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Ledger: LedgerConfig{
			RewardPerTick: 100,
			AdminAddress:  "admin",
			GenesisTime:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			TickInterval:  10 * time.Second,
		},
		Db: DbConfig{
			Username: "test",
			Password: "test",
			Address:  "mongodb://localhost:27017",
			DbName:   "test",
		},
		Queue: QueueConfig{
			User:           "test",
			Password:       "test",
			URL:            "localhost:5672",
			PublishTimeout: 5 * time.Second,
			MaxRetryTimes:  3,
			RetryInterval:  time.Second,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8090,
			AdminAPIKey: "secret",
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 2112,
		},
		Poller: PollerConfig{
			SweepEnabled:        true,
			SweepInterval:       time.Minute,
			SnapshotConcurrency: 4,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestLedgerConfig_Validate(t *testing.T) {
	t.Run("zero reward per tick", func(t *testing.T) {
		cfg := validConfig()
		cfg.Ledger.RewardPerTick = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reward-per-tick")
	})

	t.Run("missing admin address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Ledger.AdminAddress = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("non-positive tick interval", func(t *testing.T) {
		cfg := validConfig()
		cfg.Ledger.TickInterval = 0
		require.Error(t, cfg.Validate())
	})
}

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("sweep disabled skips interval check", func(t *testing.T) {
		cfg := validConfig()
		cfg.Poller.SweepEnabled = false
		cfg.Poller.SweepInterval = 0
		require.NoError(t, cfg.Validate())
	})

	t.Run("sweep enabled requires interval", func(t *testing.T) {
		cfg := validConfig()
		cfg.Poller.SweepInterval = 0
		require.Error(t, cfg.Validate())
	})
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Server.AdminAPIKey = ""
	require.Error(t, cfg.Validate())
}
