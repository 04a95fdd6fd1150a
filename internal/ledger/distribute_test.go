package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/ledger"
)

func TestDistributeAll(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		f := newFixture(t, 10)
		f.fundAndDeposit(t, "alice", 100, 10)

		_, err := f.ledger.DistributeAll("alice", 20)
		require.ErrorIs(t, err, ledger.ErrUnauthorized)
	})

	t.Run("tick zero rejected", func(t *testing.T) {
		f := newFixture(t, 10)

		_, err := f.ledger.DistributeAll(admin, 0)
		require.ErrorIs(t, err, ledger.ErrInvalidTick)
	})

	t.Run("empty registry processes zero", func(t *testing.T) {
		f := newFixture(t, 10)

		processed, err := f.ledger.DistributeAll(admin, 20)
		require.NoError(t, err)
		assert.Zero(t, processed)
	})

	t.Run("skips withdrawn stakers", func(t *testing.T) {
		f := newFixture(t, 10)
		f.fundAndDeposit(t, "alice", 100, 10)
		f.fundAndDeposit(t, "bob", 100, 10)

		_, _, err := f.ledger.Withdraw(t.Context(), "alice", 15)
		require.NoError(t, err)

		processed, err := f.ledger.DistributeAll(admin, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("idempotent at the same tick", func(t *testing.T) {
		f := newFixture(t, 10)
		f.fundAndDeposit(t, "alice", 100, 10)
		f.fundAndDeposit(t, "bob", 300, 10)

		processed, err := f.ledger.DistributeAll(admin, 20)
		require.NoError(t, err)
		assert.Equal(t, 2, processed)

		first := f.ledger.Snapshot()

		// second sweep at the same tick is a no-op on every account
		processed, err = f.ledger.DistributeAll(admin, 20)
		require.NoError(t, err)
		assert.Equal(t, 2, processed)
		assert.Equal(t, first, f.ledger.Snapshot())
	})

	t.Run("distributes proportionally to the whole registry", func(t *testing.T) {
		f := newFixture(t, 100)
		f.fundAndDeposit(t, "alice", 100, 10)
		f.fundAndDeposit(t, "bob", 300, 10)
		f.fundAndDeposit(t, "carol", 600, 10)

		processed, err := f.ledger.DistributeAll(admin, 20)
		require.NoError(t, err)
		assert.Equal(t, 3, processed)

		// 100/tick over 10 ticks split 1:3:6
		alice, _ := f.ledger.StakerView("alice")
		bob, _ := f.ledger.StakerView("bob")
		carol, _ := f.ledger.StakerView("carol")
		assert.Equal(t, uint64(100), alice.PendingReward)
		assert.Equal(t, uint64(300), bob.PendingReward)
		assert.Equal(t, uint64(600), carol.PendingReward)
	})
}
