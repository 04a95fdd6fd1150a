package ledger

import "errors"

var (
	// ErrInvalidAmount is returned when deposit is called with a zero amount.
	ErrInvalidAmount = errors.New("deposit amount must be positive")

	// ErrInvalidTick is returned when an operation is given tick 0. Tick 0 is
	// reserved to mean "never reconciled" on account checkpoints.
	ErrInvalidTick = errors.New("tick must be positive")

	// ErrNotStaking is returned when withdraw is called by a staker with no
	// active stake.
	ErrNotStaking = errors.New("staker has no active stake")

	// ErrNothingToClaim is returned when claim is called with zero pending reward.
	ErrNothingToClaim = errors.New("no pending reward to claim")

	// ErrUnauthorized is returned when a batch distribution is requested by
	// anyone other than the configured administrator.
	ErrUnauthorized = errors.New("caller is not the administrator")
)
