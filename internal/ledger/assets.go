package ledger

import "context"

// StakeAsset is the external contract holding the staked funds. TransferFrom
// pulls funds into the ledger's custody on deposit; Transfer releases them
// back on withdraw. Implementations are expected to fail the whole call when
// the staker lacks balance or allowance.
type StakeAsset interface {
	TransferFrom(ctx context.Context, from string, amount uint64) error
	Transfer(ctx context.Context, to string, amount uint64) error
}

// RewardAsset mints newly issued reward units to settle claims. The ledger
// must hold issuance authority; a mint failure fails the whole claim.
type RewardAsset interface {
	Mint(ctx context.Context, to string, amount uint64) error
}
