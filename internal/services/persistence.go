package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/observability/metrics"
)

// persistStaker writes one account snapshot through to Mongo. The ledger is
// the source of truth, so a failed write is logged and counted but does not
// fail the operation; Bootstrap reconciles on the next restart.
func (s *Service) persistStaker(ctx context.Context, view ledger.AccountView) {
	doc := &model.StakerAccountDocument{
		Address:        view.Address,
		StakeBalance:   view.StakeBalance,
		IsActive:       view.IsActive,
		EverStaked:     view.EverStaked,
		CheckpointTick: view.CheckpointTick,
		PendingReward:  view.PendingReward,
		Position:       view.Position,
	}
	if err := s.db.UpsertStakerAccount(ctx, doc); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("staker", view.Address).
			Msg("failed to persist staker account snapshot")
	}
}

// persistLedgerState writes the global totals document and refreshes the
// ledger gauges.
func (s *Service) persistLedgerState(ctx context.Context, tick uint64) {
	view := s.ledger.LedgerView()
	metrics.RecordLedgerTotals(view.TotalStake, view.Stakers)

	if err := s.db.UpsertLedgerState(ctx, view.TotalStake, view.RewardPerTick, tick); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to persist ledger state")
	}
}
