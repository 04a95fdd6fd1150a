package types

type EventTypes string

func (e EventTypes) String() string {
	return string(e)
}

// Observable ledger events, published for external indexers and audits.
const (
	EventDepositType            EventTypes = "ledger.v1.EventDeposit"
	EventWithdrawType           EventTypes = "ledger.v1.EventWithdraw"
	EventRewardsClaimedType     EventTypes = "ledger.v1.EventRewardsClaimed"
	EventRewardsDistributedType EventTypes = "ledger.v1.EventRewardsDistributed"
)
