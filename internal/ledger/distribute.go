package ledger

// DistributeAll force-reconciles every active staker in registry order and
// returns how many were processed. Only the administrator may call it. It
// moves owed-but-uncomputed reward into explicit pending balances; it does
// not change any stake balance, so running it twice at the same tick is
// idempotent.
func (l *Ledger) DistributeAll(actor string, tick uint64) (int, error) {
	if actor != l.admin {
		return 0, ErrUnauthorized
	}
	if tick == 0 {
		return 0, ErrInvalidTick
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	processed := 0
	for _, addr := range l.registry {
		acc := l.accounts[addr]
		if !acc.IsActive || acc.StakeBalance == 0 {
			continue
		}
		l.reconcile(acc, tick)
		processed++
	}
	return processed, nil
}
