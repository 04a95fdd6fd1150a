package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/types"
)

// Claim settles the staker's pending reward and journals the settlement.
func (s *Service) Claim(ctx context.Context, staker string) (uint64, *types.Error) {
	tick := s.clock.CurrentTick()
	metrics.RecordCurrentTick(tick)

	start := time.Now()
	amount, err := s.ledger.Claim(ctx, staker)
	if err != nil {
		metrics.ObserveLedgerOpDuration("claim", metrics.Error, time.Since(start))
		return 0, types.FromLedgerError(err)
	}
	metrics.ObserveLedgerOpDuration("claim", metrics.Success, time.Since(start))

	log.Ctx(ctx).Info().
		Str("staker", staker).
		Uint64("amount", amount).
		Uint64("tick", tick).
		Msg("rewards claimed")

	if view, ok := s.ledger.StakerView(staker); ok {
		s.persistStaker(ctx, view)
	}

	journalEntry := &model.SettlementDocument{
		ID:            uuid.New().String(),
		StakerAddress: staker,
		Amount:        amount,
		Tick:          tick,
		CreatedAt:     time.Now().Unix(),
	}
	if err := s.db.InsertSettlement(ctx, journalEntry); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("staker", staker).Msg("failed to journal settlement")
	}

	s.emitRewardsClaimedEvent(ctx, staker, amount, tick)

	return amount, nil
}

// GetSettlements returns the staker's claim history, newest first.
func (s *Service) GetSettlements(ctx context.Context, staker string, limit int64) ([]model.SettlementDocument, *types.Error) {
	settlements, err := s.db.GetSettlementsByStaker(ctx, staker, limit)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	return settlements, nil
}
