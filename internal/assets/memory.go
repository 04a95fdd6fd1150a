// Package assets provides the asset-contract adapters the ledger settles
// against. The in-memory implementations here back tests and mock-mode
// deployments where no real asset contracts are wired.
package assets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStakeAsset is an in-memory stake-asset ledger. Balances must be
// funded (via Fund) before TransferFrom can pull them, mirroring the
// balance/allowance failure mode of a real transferable asset.
type MemoryStakeAsset struct {
	mu       sync.Mutex
	balances map[string]uint64
	// escrow is the total currently held in the ledger's custody.
	escrow uint64
	// unbounded skips the balance check on TransferFrom, for mock-mode
	// deployments with no funded accounts.
	unbounded bool
}

func NewMemoryStakeAsset() *MemoryStakeAsset {
	return &MemoryStakeAsset{balances: make(map[string]uint64)}
}

// NewUnboundedStakeAsset returns a stake asset that never rejects a pull.
func NewUnboundedStakeAsset() *MemoryStakeAsset {
	return &MemoryStakeAsset{balances: make(map[string]uint64), unbounded: true}
}

// Fund credits a holder's spendable balance.
func (a *MemoryStakeAsset) Fund(holder string, amount uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balances[holder] += amount
}

func (a *MemoryStakeAsset) TransferFrom(_ context.Context, from string, amount uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.unbounded {
		if a.balances[from] < amount {
			return fmt.Errorf("insufficient stake balance for %s: have %d, need %d", from, a.balances[from], amount)
		}
		a.balances[from] -= amount
	}
	a.escrow += amount
	return nil
}

func (a *MemoryStakeAsset) Transfer(_ context.Context, to string, amount uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.escrow < amount {
		return fmt.Errorf("escrow underflow: have %d, need %d", a.escrow, amount)
	}
	a.escrow -= amount
	a.balances[to] += amount
	return nil
}

// BalanceOf returns the holder's spendable balance.
func (a *MemoryStakeAsset) BalanceOf(holder string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balances[holder]
}

// Escrow returns the amount currently held in custody.
func (a *MemoryStakeAsset) Escrow() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.escrow
}

// MemoryRewardAsset is an in-memory mintable reward asset.
type MemoryRewardAsset struct {
	mu       sync.Mutex
	balances map[string]uint64
	minted   uint64
}

func NewMemoryRewardAsset() *MemoryRewardAsset {
	return &MemoryRewardAsset{balances: make(map[string]uint64)}
}

func (a *MemoryRewardAsset) Mint(_ context.Context, to string, amount uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balances[to] += amount
	a.minted += amount
	return nil
}

// BalanceOf returns the holder's minted balance.
func (a *MemoryRewardAsset) BalanceOf(holder string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balances[holder]
}

// TotalMinted returns the total supply issued so far.
func (a *MemoryRewardAsset) TotalMinted() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.minted
}
