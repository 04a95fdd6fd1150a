package services

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/queue"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/types"
)

// pushWithRetry retries transient queue failures. Events are observability
// output, not ledger state: a push that still fails after all retries is
// counted and logged but never rolls the operation back.
func (s *Service) pushWithRetry(ctx context.Context, push func() error) *types.Error {
	err := retry.Do(
		push,
		retry.Attempts(s.cfg.Queue.MaxRetryTimes),
		retry.Delay(s.cfg.Queue.RetryInterval),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		metrics.RecordQueueSendError()
		return types.NewInternalServiceError(fmt.Errorf("failed to push event to queue: %w", err))
	}
	return nil
}

func (s *Service) emitDepositEvent(ctx context.Context, staker string, amount, totalStake, tick uint64) {
	ev := queue.NewDepositEvent(staker, amount, totalStake, tick)
	if err := s.pushWithRetry(ctx, func() error {
		return s.queueManager.PushDepositEvent(ctx, &ev)
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("staker", staker).Msg("failed to emit deposit event")
	}
}

func (s *Service) emitWithdrawEvent(ctx context.Context, staker string, amount, totalStake, tick uint64) {
	ev := queue.NewWithdrawEvent(staker, amount, totalStake, tick)
	if err := s.pushWithRetry(ctx, func() error {
		return s.queueManager.PushWithdrawEvent(ctx, &ev)
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("staker", staker).Msg("failed to emit withdraw event")
	}
}

func (s *Service) emitRewardsClaimedEvent(ctx context.Context, staker string, amount, tick uint64) {
	ev := queue.NewRewardsClaimedEvent(staker, amount, tick)
	if err := s.pushWithRetry(ctx, func() error {
		return s.queueManager.PushRewardsClaimedEvent(ctx, &ev)
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("staker", staker).Msg("failed to emit rewards-claimed event")
	}
}

func (s *Service) emitRewardsDistributedEvent(ctx context.Context, admin string, processed int, tick uint64) {
	ev := queue.NewRewardsDistributedEvent(admin, processed, tick)
	if err := s.pushWithRetry(ctx, func() error {
		return s.queueManager.PushRewardsDistributedEvent(ctx, &ev)
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Int("processed", processed).Msg("failed to emit rewards-distributed event")
	}
}
