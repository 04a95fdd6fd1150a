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

// UpsertStakerAccount writes the full account snapshot keyed by address.
func (db *Database) UpsertStakerAccount(ctx context.Context, doc *model.StakerAccountDocument) error {
	filter := bson.M{"_id": doc.Address}
	update := bson.M{
		"$set": bson.M{
			"stake_balance":   doc.StakeBalance,
			"is_active":       doc.IsActive,
			"ever_staked":     doc.EverStaked,
			"checkpoint_tick": doc.CheckpointTick,
			"pending_reward":  doc.PendingReward,
			"position":        doc.Position,
			"updated_at":      time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.StakerAccountCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// GetStakerAccount loads one account snapshot by address.
func (db *Database) GetStakerAccount(ctx context.Context, address string) (*model.StakerAccountDocument, error) {
	var result model.StakerAccountDocument
	err := db.collection(model.StakerAccountCollection).
		FindOne(ctx, bson.M{"_id": address}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{
			Key:     address,
			Message: "staker account not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAllStakerAccounts returns every account snapshot ordered by registry
// position, which is the first-deposit order the ledger restores with.
func (db *Database) GetAllStakerAccounts(ctx context.Context) ([]model.StakerAccountDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := db.collection(model.StakerAccountCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []model.StakerAccountDocument
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
