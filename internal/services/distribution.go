package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/types"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/utils/poller"
)

// DistributeAll runs the administrator batch sweep at the current tick and
// returns the number of stakers reconciled.
func (s *Service) DistributeAll(ctx context.Context, actor string) (int, *types.Error) {
	tick := s.clock.CurrentTick()
	metrics.RecordCurrentTick(tick)

	start := time.Now()
	processed, err := s.ledger.DistributeAll(actor, tick)
	if err != nil {
		metrics.RecordSweep(0, metrics.Error, time.Since(start))
		return 0, types.FromLedgerError(err)
	}
	metrics.RecordSweep(processed, metrics.Success, time.Since(start))

	log.Ctx(ctx).Info().
		Int("processed", processed).
		Uint64("tick", tick).
		Msg("batch distribution completed")

	s.persistSweepSnapshots(ctx)
	s.persistLedgerState(ctx, tick)
	s.emitRewardsDistributedEvent(ctx, actor, processed, tick)

	return processed, nil
}

// persistSweepSnapshots writes every account snapshot after a sweep. The
// snapshots are taken in one pass under the ledger lock and then persisted
// concurrently; Mongo upserts are independent per account.
func (s *Service) persistSweepSnapshots(ctx context.Context) {
	views := s.ledger.Snapshot()
	if len(views) == 0 {
		return
	}

	p := pool.New().WithMaxGoroutines(s.cfg.Poller.SnapshotConcurrency)
	for _, view := range views {
		p.Go(func() {
			s.persistStaker(ctx, view)
		})
	}
	p.Wait()
}

// startSweepScheduler runs DistributeAll on a timer as the administrator
// identity. A staker who is never swept still accrues correctly on their own
// next operation; the scheduler just keeps pending balances fresh for
// queries.
func (s *Service) startSweepScheduler(ctx context.Context) {
	sweepPoller := poller.NewPoller(
		s.cfg.Poller.SweepInterval,
		func(ctx context.Context) *types.Error {
			_, err := s.DistributeAll(ctx, s.cfg.Ledger.AdminAddress)
			return err
		},
	)
	sweepPoller.Start(ctx)
}
