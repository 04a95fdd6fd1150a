package db

import (
	"context"
	"errors"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertSettlement appends one claim to the settlement journal.
func (db *Database) InsertSettlement(ctx context.Context, doc *model.SettlementDocument) error {
	_, err := db.collection(model.SettlementJournalCollection).InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     doc.ID,
						Message: "settlement already recorded",
					}
				}
			}
		}
		return err
	}
	return nil
}

// GetSettlementsByStaker returns the staker's claims, newest first, capped
// at limit.
func (db *Database) GetSettlementsByStaker(ctx context.Context, address string, limit int64) ([]model.SettlementDocument, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := db.collection(model.SettlementJournalCollection).
		Find(ctx, bson.M{"staker_address": address}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settlements []model.SettlementDocument
	if err := cursor.All(ctx, &settlements); err != nil {
		return nil, err
	}
	return settlements, nil
}
