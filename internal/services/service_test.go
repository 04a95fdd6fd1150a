package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/assets"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/clock"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/config"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/services"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/types"
	"github.com/meridianlabs-io/staking-rewards-ledger/testutil"
)

const adminAddr = "admin"

type testEnv struct {
	service   *services.Service
	ledger    *ledger.Ledger
	clock     *clock.ManualClock
	db        *testutil.FakeDb
	publisher *testutil.FakePublisher
	stake     *assets.MemoryStakeAsset
	reward    *assets.MemoryRewardAsset
}

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			RewardPerTick: 10,
			AdminAddress:  adminAddr,
			GenesisTime:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			TickInterval:  10 * time.Second,
		},
		Queue: config.QueueConfig{
			User:           "test",
			Password:       "test",
			URL:            "localhost:5672",
			PublishTimeout: time.Second,
			MaxRetryTimes:  2,
			RetryInterval:  time.Millisecond,
		},
		Poller: config.PollerConfig{
			SnapshotConcurrency: 2,
		},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testConfig()
	stake := assets.NewMemoryStakeAsset()
	reward := assets.NewMemoryRewardAsset()
	ldg := ledger.New(cfg.Ledger.RewardPerTick, cfg.Ledger.AdminAddress, stake, reward)
	fakeDb := testutil.NewFakeDb()
	publisher := testutil.NewFakePublisher()
	manualClock := clock.NewManualClock(1)

	return &testEnv{
		service:   services.NewService(cfg, ldg, fakeDb, manualClock, publisher),
		ledger:    ldg,
		clock:     manualClock,
		db:        fakeDb,
		publisher: publisher,
		stake:     stake,
		reward:    reward,
	}
}

func TestServiceDeposit(t *testing.T) {
	t.Run("persists snapshot and emits event", func(t *testing.T) {
		env := newTestEnv(t)
		env.stake.Fund("alice", 500)
		env.clock.SetTick(5)

		view, serviceErr := env.service.Deposit(t.Context(), "alice", 500)
		require.Nil(t, serviceErr)
		assert.Equal(t, uint64(500), view.StakeBalance)

		doc, ok := env.db.Accounts["alice"]
		require.True(t, ok)
		assert.Equal(t, uint64(500), doc.StakeBalance)
		assert.Equal(t, uint64(5), doc.CheckpointTick)

		require.NotNil(t, env.db.State)
		assert.Equal(t, uint64(500), env.db.State.TotalStake)
		assert.Equal(t, uint64(5), env.db.State.LastTick)

		require.Len(t, env.publisher.Deposits, 1)
		ev := env.publisher.Deposits[0]
		assert.Equal(t, "alice", ev.StakerAddress)
		assert.Equal(t, uint64(500), ev.Amount)
		assert.Equal(t, uint64(5), ev.Tick)
		assert.NotEmpty(t, ev.EventID)
	})

	t.Run("invalid amount maps to taxonomy code", func(t *testing.T) {
		env := newTestEnv(t)
		env.clock.SetTick(5)

		_, serviceErr := env.service.Deposit(t.Context(), "alice", 0)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.InvalidAmount, serviceErr.ErrorCode)
		assert.Empty(t, env.publisher.Deposits)
	})

	t.Run("publish failure does not fail the deposit", func(t *testing.T) {
		env := newTestEnv(t)
		env.stake.Fund("alice", 100)
		env.clock.SetTick(5)
		env.publisher.Err = assert.AnError

		_, serviceErr := env.service.Deposit(t.Context(), "alice", 100)
		require.Nil(t, serviceErr)

		view, ok := env.ledger.StakerView("alice")
		require.True(t, ok)
		assert.Equal(t, uint64(100), view.StakeBalance)
	})
}

func TestServiceWithdraw(t *testing.T) {
	env := newTestEnv(t)
	env.stake.Fund("alice", 500)
	env.clock.SetTick(5)

	_, serviceErr := env.service.Deposit(t.Context(), "alice", 500)
	require.Nil(t, serviceErr)

	env.clock.SetTick(8)
	view, serviceErr := env.service.Withdraw(t.Context(), "alice")
	require.Nil(t, serviceErr)
	assert.Zero(t, view.StakeBalance)
	assert.Equal(t, uint64(500), env.stake.BalanceOf("alice"))

	require.Len(t, env.publisher.Withdrawals, 1)
	assert.Equal(t, uint64(500), env.publisher.Withdrawals[0].Amount)

	doc := env.db.Accounts["alice"]
	assert.False(t, doc.IsActive)

	t.Run("second withdraw maps to NotStaking", func(t *testing.T) {
		_, serviceErr := env.service.Withdraw(t.Context(), "alice")
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.NotStaking, serviceErr.ErrorCode)
	})
}

func TestServiceClaim(t *testing.T) {
	t.Run("mints, journals and emits", func(t *testing.T) {
		env := newTestEnv(t)
		env.stake.Fund("alice", 100)
		env.clock.SetTick(10)

		_, serviceErr := env.service.Deposit(t.Context(), "alice", 100)
		require.Nil(t, serviceErr)

		env.clock.SetTick(20)
		_, serviceErr = env.service.DistributeAll(t.Context(), adminAddr)
		require.Nil(t, serviceErr)

		amount, serviceErr := env.service.Claim(t.Context(), "alice")
		require.Nil(t, serviceErr)
		assert.Equal(t, uint64(100), amount)
		assert.Equal(t, uint64(100), env.reward.BalanceOf("alice"))

		require.Len(t, env.db.Settlements, 1)
		entry := env.db.Settlements[0]
		assert.Equal(t, "alice", entry.StakerAddress)
		assert.Equal(t, uint64(100), entry.Amount)
		assert.Equal(t, uint64(20), entry.Tick)

		require.Len(t, env.publisher.RewardsClaimed, 1)

		// the snapshot reflects the drained pending balance
		assert.Zero(t, env.db.Accounts["alice"].PendingReward)
	})

	t.Run("nothing to claim", func(t *testing.T) {
		env := newTestEnv(t)
		env.clock.SetTick(10)

		_, serviceErr := env.service.Claim(t.Context(), "alice")
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.NothingToClaim, serviceErr.ErrorCode)
		assert.Empty(t, env.db.Settlements)
	})
}

func TestServiceDistributeAll(t *testing.T) {
	t.Run("sweeps and persists every account", func(t *testing.T) {
		env := newTestEnv(t)
		env.stake.Fund("alice", 100)
		env.stake.Fund("bob", 300)
		env.clock.SetTick(10)

		_, serviceErr := env.service.Deposit(t.Context(), "alice", 100)
		require.Nil(t, serviceErr)
		_, serviceErr = env.service.Deposit(t.Context(), "bob", 300)
		require.Nil(t, serviceErr)

		env.clock.SetTick(20)
		processed, serviceErr := env.service.DistributeAll(t.Context(), adminAddr)
		require.Nil(t, serviceErr)
		assert.Equal(t, 2, processed)

		// 10/tick over 10 ticks split 1:3
		assert.Equal(t, uint64(25), env.db.Accounts["alice"].PendingReward)
		assert.Equal(t, uint64(75), env.db.Accounts["bob"].PendingReward)

		require.Len(t, env.publisher.RewardsDistributed, 1)
		assert.Equal(t, 2, env.publisher.RewardsDistributed[0].Processed)
		assert.Equal(t, adminAddr, env.publisher.RewardsDistributed[0].AdminAddress)
	})

	t.Run("non-admin maps to Unauthorized", func(t *testing.T) {
		env := newTestEnv(t)
		env.clock.SetTick(10)

		_, serviceErr := env.service.DistributeAll(t.Context(), "mallory")
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.Unauthorized, serviceErr.ErrorCode)
	})

	t.Run("empty registry processes zero", func(t *testing.T) {
		env := newTestEnv(t)
		env.clock.SetTick(10)

		processed, serviceErr := env.service.DistributeAll(t.Context(), adminAddr)
		require.Nil(t, serviceErr)
		assert.Zero(t, processed)
	})
}

func TestServiceBootstrap(t *testing.T) {
	t.Run("restores persisted accounts in registry order", func(t *testing.T) {
		env := newTestEnv(t)
		env.stake.Fund("alice", 100)
		env.stake.Fund("bob", 300)
		env.clock.SetTick(10)

		_, serviceErr := env.service.Deposit(t.Context(), "alice", 100)
		require.Nil(t, serviceErr)
		_, serviceErr = env.service.Deposit(t.Context(), "bob", 300)
		require.Nil(t, serviceErr)

		// fresh service over the same fake db
		cfg := testConfig()
		restoredLedger := ledger.New(cfg.Ledger.RewardPerTick, cfg.Ledger.AdminAddress, env.stake, env.reward)
		restored := services.NewService(cfg, restoredLedger, env.db, env.clock, env.publisher)
		require.NoError(t, restored.Bootstrap(t.Context()))

		assert.Equal(t, env.ledger.LedgerView(), restoredLedger.LedgerView())
		assert.Equal(t, env.ledger.Snapshot(), restoredLedger.Snapshot())
	})

	t.Run("fresh deployment has nothing to restore", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.service.Bootstrap(t.Context()))
		assert.Zero(t, env.ledger.LedgerView().TotalStake)
	})
}
