package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/clock"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/config"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/queue"
)

// EventPublisher is the queue surface the service publishes ledger events
// through. *queue.QueueManager satisfies it; tests substitute a fake.
type EventPublisher interface {
	PushDepositEvent(ctx context.Context, ev *queue.DepositEvent) error
	PushWithdrawEvent(ctx context.Context, ev *queue.WithdrawEvent) error
	PushRewardsClaimedEvent(ctx context.Context, ev *queue.RewardsClaimedEvent) error
	PushRewardsDistributedEvent(ctx context.Context, ev *queue.RewardsDistributedEvent) error
}

// Service composes the in-memory ledger with its persistence, event
// publication and tick source. The ledger is the source of truth; Mongo
// carries write-through snapshots for restarts and external read access.
type Service struct {
	cfg          *config.Config
	ledger       *ledger.Ledger
	db           db.DbInterface
	clock        clock.TickSource
	queueManager EventPublisher
}

func NewService(
	cfg *config.Config,
	ldg *ledger.Ledger,
	db db.DbInterface,
	tickSource clock.TickSource,
	qm EventPublisher,
) *Service {
	return &Service{
		cfg:          cfg,
		ledger:       ldg,
		db:           db,
		clock:        tickSource,
		queueManager: qm,
	}
}

// Start bootstraps the ledger from persisted state and, when configured,
// launches the scheduled sweep. It blocks until ctx is done.
func (s *Service) Start(ctx context.Context) {
	if err := s.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap ledger from persisted state")
	}

	if s.cfg.Poller.SweepEnabled {
		go s.startSweepScheduler(ctx)
	}

	<-ctx.Done()
	log.Info().Msg("service stopped")
}
