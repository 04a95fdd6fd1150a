package model

import (
	"context"
	"errors"
	"time"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Setup creates the collections and indexes the ledger relies on. It is
// idempotent and safe to run on every startup.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)

	collections := []string{
		StakerAccountCollection,
		LedgerStateCollection,
		SettlementJournalCollection,
	}
	for _, collection := range collections {
		if err := createCollection(ctx, database, collection); err != nil {
			return err
		}
	}

	accountIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "position", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := database.Collection(StakerAccountCollection).
		Indexes().CreateMany(ctx, accountIndexes); err != nil {
		return err
	}

	settlementIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "staker_address", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := database.Collection(SettlementJournalCollection).
		Indexes().CreateMany(ctx, settlementIndexes); err != nil {
		return err
	}

	return client.Disconnect(ctx)
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	// CreateCollection errors when the collection already exists; that is
	// fine for an idempotent setup.
	if err := database.CreateCollection(ctx, collectionName); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
			return nil
		}
		return err
	}
	return nil
}
