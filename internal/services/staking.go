package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/types"
)

// Deposit stakes amount units for the staker at the current tick.
func (s *Service) Deposit(ctx context.Context, staker string, amount uint64) (ledger.AccountView, *types.Error) {
	tick := s.clock.CurrentTick()
	metrics.RecordCurrentTick(tick)

	start := time.Now()
	view, err := s.ledger.Deposit(ctx, staker, amount, tick)
	if err != nil {
		metrics.ObserveLedgerOpDuration("deposit", metrics.Error, time.Since(start))
		return ledger.AccountView{}, types.FromLedgerError(err)
	}
	metrics.ObserveLedgerOpDuration("deposit", metrics.Success, time.Since(start))

	log.Ctx(ctx).Info().
		Str("staker", staker).
		Uint64("amount", amount).
		Uint64("tick", tick).
		Msg("stake deposited")

	s.persistStaker(ctx, view)
	s.persistLedgerState(ctx, tick)
	s.emitDepositEvent(ctx, staker, amount, s.ledger.LedgerView().TotalStake, tick)

	return view, nil
}

// Withdraw releases the staker's full stake at the current tick.
func (s *Service) Withdraw(ctx context.Context, staker string) (ledger.AccountView, *types.Error) {
	tick := s.clock.CurrentTick()
	metrics.RecordCurrentTick(tick)

	start := time.Now()
	view, amount, err := s.ledger.Withdraw(ctx, staker, tick)
	if err != nil {
		metrics.ObserveLedgerOpDuration("withdraw", metrics.Error, time.Since(start))
		return ledger.AccountView{}, types.FromLedgerError(err)
	}
	metrics.ObserveLedgerOpDuration("withdraw", metrics.Success, time.Since(start))

	log.Ctx(ctx).Info().
		Str("staker", staker).
		Uint64("amount", amount).
		Uint64("tick", tick).
		Msg("stake withdrawn")

	s.persistStaker(ctx, view)
	s.persistLedgerState(ctx, tick)
	s.emitWithdrawEvent(ctx, staker, amount, s.ledger.LedgerView().TotalStake, tick)

	return view, nil
}

// GetStaker returns the live account snapshot for an address.
func (s *Service) GetStaker(ctx context.Context, staker string) (ledger.AccountView, *types.Error) {
	view, ok := s.ledger.StakerView(staker)
	if !ok {
		return ledger.AccountView{}, types.NewError(
			http.StatusNotFound,
			types.NotFound,
			fmt.Errorf("staker %s has never deposited", staker),
		)
	}
	return view, nil
}

// GetLedger returns the global ledger snapshot plus the current tick.
func (s *Service) GetLedger(ctx context.Context) (ledger.View, uint64) {
	return s.ledger.LedgerView(), s.clock.CurrentTick()
}
