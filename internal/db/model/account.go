package model

const StakerAccountCollection = "staker_accounts"

// StakerAccountDocument is the persisted snapshot of one staker account.
// Position records the staker's registry slot so the first-deposit iteration
// order survives a restart.
type StakerAccountDocument struct {
	Address        string `bson:"_id"`
	StakeBalance   uint64 `bson:"stake_balance"`
	IsActive       bool   `bson:"is_active"`
	EverStaked     bool   `bson:"ever_staked"`
	CheckpointTick uint64 `bson:"checkpoint_tick"`
	PendingReward  uint64 `bson:"pending_reward"`
	Position       int    `bson:"position"`
	UpdatedAt      int64  `bson:"updated_at"`
}
