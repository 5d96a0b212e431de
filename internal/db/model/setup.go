package model

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakegov/governance-engine/internal/config"
)

var collectionIndexes = map[string][]bson.D{
	StakeCollection:           nil,
	ProposalCollection:        {{{Key: "status", Value: 1}}},
	VoteCollection:            {{{Key: "proposal_id", Value: 1}}},
	GovernanceStateCollection: nil,
}

// Setup creates the governance collections and their secondary indexes.
// It is idempotent and safe to run on every startup.
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

	existing, err := database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for name, indexes := range collectionIndexes {
		if !existingSet[name] {
			if err := database.CreateCollection(ctx, name); err != nil {
				return err
			}
			log.Ctx(ctx).Debug().Str("collection", name).Msg("collection created")
		}
		for _, keys := range indexes {
			_, err := database.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
			if err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("governance db model setup complete")
	return client.Disconnect(ctx)
}
