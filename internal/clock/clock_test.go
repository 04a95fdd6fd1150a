package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalClock(t *testing.T) {
	genesis := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	c, err := NewIntervalClock(genesis, 10*time.Second)
	require.NoError(t, err)

	t.Run("before genesis clamps to tick 1", func(t *testing.T) {
		c.now = func() time.Time { return genesis.Add(-time.Hour) }
		assert.Equal(t, uint64(1), c.CurrentTick())
	})

	t.Run("first interval is tick 1", func(t *testing.T) {
		c.now = func() time.Time { return genesis.Add(3 * time.Second) }
		assert.Equal(t, uint64(1), c.CurrentTick())
	})

	t.Run("interval boundary advances the tick", func(t *testing.T) {
		c.now = func() time.Time { return genesis.Add(10 * time.Second) }
		assert.Equal(t, uint64(2), c.CurrentTick())

		c.now = func() time.Time { return genesis.Add(95 * time.Second) }
		assert.Equal(t, uint64(10), c.CurrentTick())
	})

	t.Run("non-positive interval rejected", func(t *testing.T) {
		_, err := NewIntervalClock(genesis, 0)
		require.Error(t, err)
	})
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(5)
	assert.Equal(t, uint64(5), c.CurrentTick())

	c.SetTick(9)
	assert.Equal(t, uint64(9), c.CurrentTick())
}
