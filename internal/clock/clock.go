// Package clock provides the logical tick source driving reward accrual.
package clock

import (
	"errors"
	"time"
)

// TickSource reports the current logical tick. Ticks are monotonically
// non-decreasing and start at 1; tick 0 is reserved by the ledger to mean
// "never checkpointed".
type TickSource interface {
	CurrentTick() uint64
}

// IntervalClock derives the tick from wall time: tick n covers the n-th
// interval after genesis, so the first valid tick is 1.
type IntervalClock struct {
	genesis  time.Time
	interval time.Duration
	now      func() time.Time
}

func NewIntervalClock(genesis time.Time, interval time.Duration) (*IntervalClock, error) {
	if interval <= 0 {
		return nil, errors.New("tick interval must be positive")
	}
	return &IntervalClock{
		genesis:  genesis,
		interval: interval,
		now:      time.Now,
	}, nil
}

func (c *IntervalClock) CurrentTick() uint64 {
	elapsed := c.now().Sub(c.genesis)
	if elapsed < 0 {
		return 1
	}
	return uint64(elapsed/c.interval) + 1
}

// ManualClock is a hand-advanced tick source for tests.
type ManualClock struct {
	tick uint64
}

func NewManualClock(tick uint64) *ManualClock {
	return &ManualClock{tick: tick}
}

func (c *ManualClock) CurrentTick() uint64 {
	return c.tick
}

// SetTick moves the clock forward. Moving it backwards is a programming
// error the ledger would reject anyway via checkpoint monotonicity.
func (c *ManualClock) SetTick(tick uint64) {
	c.tick = tick
}
