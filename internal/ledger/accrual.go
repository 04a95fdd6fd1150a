package ledger

import (
	sdkmath "cosmossdk.io/math"
)

// reconcile folds the reward owed for the interval since the account's last
// checkpoint into its pending balance, then advances the checkpoint. Every
// balance-affecting operation calls this before mutating the balance, which
// is what makes each sub-interval accrue against the stake that was actually
// held during it.
//
// Callers must hold l.mu and must have validated tick > 0.
func (l *Ledger) reconcile(acc *Account, tick uint64) {
	// First-ever reconciliation: start the clock now, grant nothing. Time
	// before the staker had any recorded stake never earns.
	if acc.CheckpointTick == 0 {
		acc.CheckpointTick = tick
		return
	}

	// No time elapsed, or nobody is staking globally. The checkpoint is left
	// alone; with zero total stake there is no share to attribute.
	if tick <= acc.CheckpointTick || l.totalStake == 0 {
		return
	}

	// Fully withdrawn stakers never accrue; just move the checkpoint.
	if acc.StakeBalance == 0 {
		acc.CheckpointTick = tick
		return
	}

	elapsed := tick - acc.CheckpointTick

	// rewardPerTick * elapsed * balance / totalStake, multiplications first,
	// one floor division at the end. The triple product can exceed uint64 so
	// it is carried in a big Int; the truncation of the final quotient is
	// the accepted precision loss, not something to round away.
	reward := sdkmath.NewIntFromUint64(l.rewardPerTick).
		Mul(sdkmath.NewIntFromUint64(elapsed)).
		Mul(sdkmath.NewIntFromUint64(acc.StakeBalance)).
		Quo(sdkmath.NewIntFromUint64(l.totalStake)).
		Uint64()

	acc.PendingReward += reward
	acc.CheckpointTick = tick
}
