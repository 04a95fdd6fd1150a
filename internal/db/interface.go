package db

import (
	"context"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	UpsertStakerAccount(ctx context.Context, doc *model.StakerAccountDocument) error
	GetStakerAccount(ctx context.Context, address string) (*model.StakerAccountDocument, error)
	GetAllStakerAccounts(ctx context.Context) ([]model.StakerAccountDocument, error)
	UpsertLedgerState(ctx context.Context, totalStake, rewardPerTick, lastTick uint64) error
	GetLedgerState(ctx context.Context) (*model.LedgerStateDocument, error)
	InsertSettlement(ctx context.Context, doc *model.SettlementDocument) error
	GetSettlementsByStaker(ctx context.Context, address string, limit int64) ([]model.SettlementDocument, error)
}
