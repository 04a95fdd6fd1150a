package ledger

// Account holds the per-staker bookkeeping state. Records are created
// lazily on first deposit and never deleted; a fully withdrawn staker keeps
// their record so pending rewards survive and re-staking works.
type Account struct {
	// StakeBalance is the currently staked amount.
	StakeBalance uint64
	// IsActive is true while the staker holds a non-zero, not-yet-withdrawn stake.
	IsActive bool
	// EverStaked flips to true on the first deposit and guards against
	// duplicate registry entries.
	EverStaked bool
	// CheckpointTick is the tick at which rewards were last reconciled.
	// Zero means the staker has never been reconciled; tick 0 itself is not
	// a valid operational tick, so the two states cannot collide.
	CheckpointTick uint64
	// PendingReward is accrued but unclaimed reward. It only ever decreases
	// to exactly zero, on a successful claim.
	PendingReward uint64

	// position is the account's slot in the staker registry, fixed at first
	// deposit.
	position int
}

// AccountView is a read-only snapshot of a staker account, safe to hand out
// across the ledger's locking boundary.
type AccountView struct {
	Address        string `json:"address"`
	Position       int    `json:"position"`
	StakeBalance   uint64 `json:"stake_balance"`
	IsActive       bool   `json:"is_active"`
	EverStaked     bool   `json:"ever_staked"`
	CheckpointTick uint64 `json:"checkpoint_tick"`
	PendingReward  uint64 `json:"pending_reward"`
}

// View is a read-only snapshot of the global ledger state.
type View struct {
	TotalStake    uint64 `json:"total_stake"`
	RewardPerTick uint64 `json:"reward_per_tick"`
	Stakers       int    `json:"stakers"`
}

func (a *Account) view(address string) AccountView {
	return AccountView{
		Address:        address,
		Position:       a.position,
		StakeBalance:   a.StakeBalance,
		IsActive:       a.IsActive,
		EverStaked:     a.EverStaked,
		CheckpointTick: a.CheckpointTick,
		PendingReward:  a.PendingReward,
	}
}
