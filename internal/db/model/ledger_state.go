package model

const LedgerStateCollection = "ledger_state"

// LedgerStateID is the _id of the single global ledger-state document.
const LedgerStateID = "ledger_state"

type LedgerStateDocument struct {
	ID            string `bson:"_id"`
	TotalStake    uint64 `bson:"total_stake"`
	RewardPerTick uint64 `bson:"reward_per_tick"`
	LastTick      uint64 `bson:"last_tick"`
	UpdatedAt     int64  `bson:"updated_at"`
}
