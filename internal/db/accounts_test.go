//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/meridianlabs-io/staking-rewards-ledger/pkg"
)

func randomAccount(position int) *model.StakerAccountDocument {
	return &model.StakerAccountDocument{
		Address:        pkg.RandString(12),
		StakeBalance:   gofakeit.Uint64() % 1_000_000,
		IsActive:       true,
		EverStaked:     true,
		CheckpointTick: gofakeit.Uint64() % 10_000,
		PendingReward:  gofakeit.Uint64() % 1_000_000,
		Position:       position,
		UpdatedAt:      time.Now().Unix(),
	}
}

func TestStakerAccounts(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("get missing account", func(t *testing.T) {
		doc, err := testDB.GetStakerAccount(ctx, pkg.RandString(12))
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, doc)
	})

	t.Run("upsert and get", func(t *testing.T) {
		account := randomAccount(1)
		err := testDB.UpsertStakerAccount(ctx, account)
		require.NoError(t, err)

		stored, err := testDB.GetStakerAccount(ctx, account.Address)
		require.NoError(t, err)
		assert.Equal(t, account, stored)

		// second upsert overwrites the snapshot in place
		account.StakeBalance = 0
		account.IsActive = false
		account.PendingReward += 42
		err = testDB.UpsertStakerAccount(ctx, account)
		require.NoError(t, err)

		stored, err = testDB.GetStakerAccount(ctx, account.Address)
		require.NoError(t, err)
		assert.Equal(t, account, stored)
	})

	t.Run("get all sorted by position", func(t *testing.T) {
		resetDatabase(t)

		// insert out of registry order on purpose
		third := randomAccount(3)
		first := randomAccount(1)
		second := randomAccount(2)
		for _, doc := range []*model.StakerAccountDocument{third, first, second} {
			require.NoError(t, testDB.UpsertStakerAccount(ctx, doc))
		}

		accounts, err := testDB.GetAllStakerAccounts(ctx)
		require.NoError(t, err)
		require.Len(t, accounts, 3)
		assert.Equal(t, first.Address, accounts[0].Address)
		assert.Equal(t, second.Address, accounts[1].Address)
		assert.Equal(t, third.Address, accounts[2].Address)
	})
}
