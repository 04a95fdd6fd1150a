package db

import (
	"context"
	"time"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()

	outcome := metrics.Success
	if err != nil {
		outcome = metrics.Error
	}
	metrics.ObserveDbLatency(method, outcome, time.Since(start))

	return err
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) UpsertStakerAccount(ctx context.Context, doc *model.StakerAccountDocument) error {
	return d.run("UpsertStakerAccount", func() error {
		return d.db.UpsertStakerAccount(ctx, doc)
	})
}

func (d *DbWithMetrics) GetStakerAccount(ctx context.Context, address string) (result *model.StakerAccountDocument, err error) {
	//nolint:errcheck
	d.run("GetStakerAccount", func() error {
		result, err = d.db.GetStakerAccount(ctx, address)
		return err
	})

	return
}

func (d *DbWithMetrics) GetAllStakerAccounts(ctx context.Context) (result []model.StakerAccountDocument, err error) {
	//nolint:errcheck
	d.run("GetAllStakerAccounts", func() error {
		result, err = d.db.GetAllStakerAccounts(ctx)
		return err
	})

	return
}

func (d *DbWithMetrics) UpsertLedgerState(ctx context.Context, totalStake, rewardPerTick, lastTick uint64) error {
	return d.run("UpsertLedgerState", func() error {
		return d.db.UpsertLedgerState(ctx, totalStake, rewardPerTick, lastTick)
	})
}

func (d *DbWithMetrics) GetLedgerState(ctx context.Context) (result *model.LedgerStateDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerState", func() error {
		result, err = d.db.GetLedgerState(ctx)
		return err
	})

	return
}

func (d *DbWithMetrics) InsertSettlement(ctx context.Context, doc *model.SettlementDocument) error {
	return d.run("InsertSettlement", func() error {
		return d.db.InsertSettlement(ctx, doc)
	})
}

func (d *DbWithMetrics) GetSettlementsByStaker(ctx context.Context, address string, limit int64) (result []model.SettlementDocument, err error) {
	//nolint:errcheck
	d.run("GetSettlementsByStaker", func() error {
		result, err = d.db.GetSettlementsByStaker(ctx, address, limit)
		return err
	})

	return
}
