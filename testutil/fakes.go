package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/queue"
)

// FakeDb is an in-memory stand-in for db.DbInterface used by unit tests.
type FakeDb struct {
	mu          sync.Mutex
	Accounts    map[string]model.StakerAccountDocument
	State       *model.LedgerStateDocument
	Settlements []model.SettlementDocument
}

func NewFakeDb() *FakeDb {
	return &FakeDb{Accounts: make(map[string]model.StakerAccountDocument)}
}

func (f *FakeDb) Ping(context.Context) error { return nil }

func (f *FakeDb) UpsertStakerAccount(_ context.Context, doc *model.StakerAccountDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Accounts[doc.Address] = *doc
	return nil
}

func (f *FakeDb) GetStakerAccount(_ context.Context, address string) (*model.StakerAccountDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.Accounts[address]
	if !ok {
		return nil, &db.NotFoundError{Key: address, Message: "staker account not found"}
	}
	return &doc, nil
}

func (f *FakeDb) GetAllStakerAccounts(context.Context) ([]model.StakerAccountDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	docs := make([]model.StakerAccountDocument, 0, len(f.Accounts))
	for _, doc := range f.Accounts {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Position < docs[j].Position })
	return docs, nil
}

func (f *FakeDb) UpsertLedgerState(_ context.Context, totalStake, rewardPerTick, lastTick uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.State = &model.LedgerStateDocument{
		ID:            model.LedgerStateID,
		TotalStake:    totalStake,
		RewardPerTick: rewardPerTick,
		LastTick:      lastTick,
	}
	return nil
}

func (f *FakeDb) GetLedgerState(context.Context) (*model.LedgerStateDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.State == nil {
		return nil, &db.NotFoundError{Key: model.LedgerStateID, Message: "ledger state not found"}
	}
	state := *f.State
	return &state, nil
}

func (f *FakeDb) InsertSettlement(_ context.Context, doc *model.SettlementDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Settlements = append(f.Settlements, *doc)
	return nil
}

func (f *FakeDb) GetSettlementsByStaker(_ context.Context, address string, limit int64) ([]model.SettlementDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.SettlementDocument
	for i := len(f.Settlements) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if f.Settlements[i].StakerAddress == address {
			out = append(out, f.Settlements[i])
		}
	}
	return out, nil
}

// FakePublisher records published events in memory.
type FakePublisher struct {
	mu                 sync.Mutex
	Deposits           []queue.DepositEvent
	Withdrawals        []queue.WithdrawEvent
	RewardsClaimed     []queue.RewardsClaimedEvent
	RewardsDistributed []queue.RewardsDistributedEvent
	// Err, when set, is returned by every push.
	Err error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (f *FakePublisher) PushDepositEvent(_ context.Context, ev *queue.DepositEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Deposits = append(f.Deposits, *ev)
	return nil
}

func (f *FakePublisher) PushWithdrawEvent(_ context.Context, ev *queue.WithdrawEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Withdrawals = append(f.Withdrawals, *ev)
	return nil
}

func (f *FakePublisher) PushRewardsClaimedEvent(_ context.Context, ev *queue.RewardsClaimedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.RewardsClaimed = append(f.RewardsClaimed, *ev)
	return nil
}

func (f *FakePublisher) PushRewardsDistributedEvent(_ context.Context, ev *queue.RewardsDistributedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.RewardsDistributed = append(f.RewardsDistributed, *ev)
	return nil
}
