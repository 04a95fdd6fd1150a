package ledger

import (
	"fmt"
	"sync"

	"context"
)

// Ledger is the single aggregate owning all staking-reward accounting state:
// per-staker accounts, the append-only staker registry and the global stake
// total. Every public operation takes the ledger mutex once, so operations
// are serialized with respect to each other; external asset calls are made
// only after the internal accounting they depend on has been written, which
// is the whole reentrancy defense (see Claim and Withdraw).
type Ledger struct {
	mu sync.Mutex

	rewardPerTick uint64
	admin         string

	totalStake uint64
	accounts   map[string]*Account
	// registry keeps every address that has ever deposited, in first-deposit
	// order. Entries are never removed.
	registry []string

	stakeAsset  StakeAsset
	rewardAsset RewardAsset
}

func New(rewardPerTick uint64, admin string, stakeAsset StakeAsset, rewardAsset RewardAsset) *Ledger {
	return &Ledger{
		rewardPerTick: rewardPerTick,
		admin:         admin,
		accounts:      make(map[string]*Account),
		stakeAsset:    stakeAsset,
		rewardAsset:   rewardAsset,
	}
}

// Deposit pulls amount units of the stake asset from the staker and credits
// their stake balance. Rewards are reconciled against the pre-deposit
// balance first, so the new stake only earns from tick onwards.
func (l *Ledger) Deposit(ctx context.Context, staker string, amount, tick uint64) (AccountView, error) {
	if tick == 0 {
		return AccountView{}, ErrInvalidTick
	}
	if amount == 0 {
		return AccountView{}, ErrInvalidAmount
	}

	// Pull funds before touching ledger state so a failed transfer leaves
	// the ledger untouched.
	if err := l.stakeAsset.TransferFrom(ctx, staker, amount); err != nil {
		return AccountView{}, fmt.Errorf("failed to pull stake from %s: %w", staker, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acc := l.account(staker)
	// Reconcile against the pre-deposit balance. For a first-time staker
	// this sets the checkpoint to the current tick and grants nothing.
	l.reconcile(acc, tick)

	acc.StakeBalance += amount
	l.totalStake += amount
	if !acc.EverStaked {
		acc.position = len(l.registry)
		l.registry = append(l.registry, staker)
		acc.EverStaked = true
	}
	acc.IsActive = true

	return acc.view(staker), nil
}

// Withdraw releases the staker's full stake back to them. Rewards for the
// elapsed interval are reconciled against the pre-withdrawal balance; the
// stake balance, total and active flag are all zeroed before the external
// transfer is made, so a reentrant call cannot withdraw twice.
func (l *Ledger) Withdraw(ctx context.Context, staker string, tick uint64) (AccountView, uint64, error) {
	if tick == 0 {
		return AccountView{}, 0, ErrInvalidTick
	}

	l.mu.Lock()
	acc, ok := l.accounts[staker]
	if !ok || !acc.IsActive || acc.StakeBalance == 0 {
		l.mu.Unlock()
		return AccountView{}, 0, ErrNotStaking
	}

	l.reconcile(acc, tick)

	amount := acc.StakeBalance
	acc.StakeBalance = 0
	l.totalStake -= amount
	acc.IsActive = false
	view := acc.view(staker)
	l.mu.Unlock()

	if err := l.stakeAsset.Transfer(ctx, staker, amount); err != nil {
		// Restore the stake so the operation is all-or-nothing. The restore
		// is additive because a reentrant deposit may have credited the
		// account between unlock and here. The checkpoint advance from
		// reconcile stands; the elapsed interval was already credited.
		l.mu.Lock()
		acc.StakeBalance += amount
		l.totalStake += amount
		acc.IsActive = true
		l.mu.Unlock()
		return AccountView{}, 0, fmt.Errorf("failed to release stake to %s: %w", staker, err)
	}

	return view, amount, nil
}

// account returns the staker's record, creating a zero-valued one on first
// sight.
func (l *Ledger) account(staker string) *Account {
	acc, ok := l.accounts[staker]
	if !ok {
		acc = &Account{}
		l.accounts[staker] = acc
	}
	return acc
}

// StakerView returns a snapshot of the staker's account, or false when the
// address has never deposited.
func (l *Ledger) StakerView(staker string) (AccountView, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[staker]
	if !ok {
		return AccountView{}, false
	}
	return acc.view(staker), true
}

// LedgerView returns a snapshot of the global totals.
func (l *Ledger) LedgerView() View {
	l.mu.Lock()
	defer l.mu.Unlock()

	return View{
		TotalStake:    l.totalStake,
		RewardPerTick: l.rewardPerTick,
		Stakers:       len(l.registry),
	}
}

// Snapshot returns a view of every registered account in registry order,
// used for write-through persistence after batch sweeps.
func (l *Ledger) Snapshot() []AccountView {
	l.mu.Lock()
	defer l.mu.Unlock()

	views := make([]AccountView, 0, len(l.registry))
	for _, addr := range l.registry {
		views = append(views, l.accounts[addr].view(addr))
	}
	return views
}

// Restore loads persisted accounts into an empty ledger. Accounts must be
// given in registry (first-deposit) order; the global total is rebuilt from
// the individual balances so the sum invariant holds by construction.
func (l *Ledger) Restore(accounts []AccountView) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.accounts) != 0 {
		return fmt.Errorf("restore on a non-empty ledger")
	}

	for _, v := range accounts {
		if _, ok := l.accounts[v.Address]; ok {
			return fmt.Errorf("duplicate account %s in restore set", v.Address)
		}
		l.accounts[v.Address] = &Account{
			StakeBalance:   v.StakeBalance,
			IsActive:       v.IsActive,
			EverStaked:     v.EverStaked,
			CheckpointTick: v.CheckpointTick,
			PendingReward:  v.PendingReward,
			position:       len(l.registry),
		}
		l.registry = append(l.registry, v.Address)
		l.totalStake += v.StakeBalance
	}
	return nil
}
