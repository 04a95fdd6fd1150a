package db

import (
	"context"
	"errors"
	"time"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertLedgerState writes the single global ledger-state document.
func (db *Database) UpsertLedgerState(ctx context.Context, totalStake, rewardPerTick, lastTick uint64) error {
	filter := bson.M{"_id": model.LedgerStateID}
	update := bson.M{
		"$set": bson.M{
			"total_stake":     totalStake,
			"reward_per_tick": rewardPerTick,
			"last_tick":       lastTick,
			"updated_at":      time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.LedgerStateCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// GetLedgerState loads the global ledger-state document.
func (db *Database) GetLedgerState(ctx context.Context) (*model.LedgerStateDocument, error) {
	var result model.LedgerStateDocument
	err := db.collection(model.LedgerStateCollection).
		FindOne(ctx, bson.M{"_id": model.LedgerStateID}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{
			Key:     model.LedgerStateID,
			Message: "ledger state not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
