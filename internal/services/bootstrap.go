package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/ledger"
)

// Bootstrap restores the in-memory ledger from the persisted account
// snapshots. A missing ledger-state document means a fresh deployment and is
// not an error.
func (s *Service) Bootstrap(ctx context.Context) error {
	state, err := s.db.GetLedgerState(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			log.Info().Msg("no persisted ledger state, starting fresh")
			return nil
		}
		return fmt.Errorf("failed to load ledger state: %w", err)
	}

	docs, err := s.db.GetAllStakerAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load staker accounts: %w", err)
	}

	accounts := make([]ledger.AccountView, 0, len(docs))
	for _, doc := range docs {
		accounts = append(accounts, ledger.AccountView{
			Address:        doc.Address,
			StakeBalance:   doc.StakeBalance,
			IsActive:       doc.IsActive,
			EverStaked:     doc.EverStaked,
			CheckpointTick: doc.CheckpointTick,
			PendingReward:  doc.PendingReward,
		})
	}

	if err := s.ledger.Restore(accounts); err != nil {
		return fmt.Errorf("failed to restore ledger: %w", err)
	}

	restored := s.ledger.LedgerView()
	if restored.TotalStake != state.TotalStake {
		// The snapshots are written per-account after the state document, so a
		// crash between writes can leave them ahead of it. The account sum
		// wins; the state document is only a convenience aggregate.
		log.Warn().
			Uint64("stateTotal", state.TotalStake).
			Uint64("accountSum", restored.TotalStake).
			Msg("persisted ledger state total diverges from account sum, using account sum")
	}

	log.Info().
		Int("stakers", restored.Stakers).
		Uint64("totalStake", restored.TotalStake).
		Msg("ledger restored from persisted state")
	return nil
}
