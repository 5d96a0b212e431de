package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakegov/governance-engine/internal/db/model"
)

// GetStakedAmount returns the participant's recorded stake. A participant
// without a stake record holds zero; that is a normal case, not an error.
func (db *Database) GetStakedAmount(ctx context.Context, stakerAddress string) (uint64, error) {
	var doc model.StakeDocument
	err := db.collection(model.StakeCollection).
		FindOne(ctx, bson.M{"_id": stakerAddress}).
		Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.StakedAmount, nil
}

// IncrementStake adds amount to the participant's stake record, creating the
// record on first stake, and returns the new total.
func (db *Database) IncrementStake(ctx context.Context, stakerAddress string, amount uint64) (uint64, error) {
	filter := bson.M{"_id": stakerAddress}
	update := bson.M{"$inc": bson.M{"staked_amount": amount}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc model.StakeDocument
	err := db.collection(model.StakeCollection).
		FindOneAndUpdate(ctx, filter, update, opts).
		Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.StakedAmount, nil
}
