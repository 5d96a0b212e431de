package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakegov/governance-engine/internal/db/model"
)

// GetGovernanceState returns the global counters. Before the first stake or
// proposal the singleton does not exist yet and both counters are zero.
func (db *Database) GetGovernanceState(ctx context.Context) (*model.GovernanceState, error) {
	var state model.GovernanceState
	err := db.collection(model.GovernanceStateCollection).
		FindOne(ctx, bson.M{}).
		Decode(&state)
	if err == mongo.ErrNoDocuments {
		return &model.GovernanceState{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// IncrementTotalStaked adds amount to the global total_staked counter.
func (db *Database) IncrementTotalStaked(ctx context.Context, amount uint64) error {
	update := bson.M{"$inc": bson.M{"total_staked": amount}}
	opts := options.Update().SetUpsert(true)
	_, err := db.collection(model.GovernanceStateCollection).
		UpdateOne(ctx, bson.M{}, update, opts)
	return err
}

// NextProposalID increments the proposal counter and returns the new value.
// Proposal ids therefore start at 1 and are strictly monotonic.
func (db *Database) NextProposalID(ctx context.Context) (uint64, error) {
	update := bson.M{"$inc": bson.M{"proposal_count": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var state model.GovernanceState
	err := db.collection(model.GovernanceStateCollection).
		FindOneAndUpdate(ctx, bson.M{}, update, opts).
		Decode(&state)
	if err != nil {
		return 0, err
	}
	return state.ProposalCount, nil
}
