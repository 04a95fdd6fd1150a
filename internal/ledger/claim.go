package ledger

import (
	"context"
	"fmt"
)

// Claim settles the staker's pending reward by minting that many units of
// the reward asset to them. No reconciliation happens here: claiming does
// not open a new accrual window, it only drains what prior operations have
// already reconciled.
//
// The pending balance is zeroed before Mint is invoked. A reward asset that
// re-enters Claim during issuance therefore observes a zero balance and
// fails with ErrNothingToClaim instead of double-claiming.
func (l *Ledger) Claim(ctx context.Context, staker string) (uint64, error) {
	l.mu.Lock()
	acc, ok := l.accounts[staker]
	if !ok || acc.PendingReward == 0 {
		l.mu.Unlock()
		return 0, ErrNothingToClaim
	}

	amount := acc.PendingReward
	acc.PendingReward = 0
	l.mu.Unlock()

	if err := l.rewardAsset.Mint(ctx, staker, amount); err != nil {
		// Put the reward back so a failed mint fails the whole claim.
		l.mu.Lock()
		acc.PendingReward += amount
		l.mu.Unlock()
		return 0, fmt.Errorf("failed to mint reward to %s: %w", staker, err)
	}

	return amount, nil
}
