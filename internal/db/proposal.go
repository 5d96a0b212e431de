package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stakegov/governance-engine/internal/db/model"
	"github.com/stakegov/governance-engine/internal/types"
)

func (db *Database) SaveNewProposal(
	ctx context.Context, proposalDoc *model.ProposalDocument,
) error {
	_, err := db.collection(model.ProposalCollection).
		InsertOne(ctx, proposalDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     fmt.Sprintf("%d", proposalDoc.ProposalID),
						Message: "proposal already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetProposalByID(
	ctx context.Context, proposalID uint64,
) (*model.ProposalDocument, error) {
	var proposal model.ProposalDocument
	err := db.collection(model.ProposalCollection).
		FindOne(ctx, bson.M{"_id": proposalID}).
		Decode(&proposal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", proposalID),
				Message: "proposal not found",
			}
		}
		return nil, err
	}
	return &proposal, nil
}

// AddVoteWeight adds weight to the proposal's yes or no tally. Tallies only
// ever grow; there is no vote retraction.
func (db *Database) AddVoteWeight(
	ctx context.Context, proposalID uint64, support bool, weight uint64,
) error {
	tallyField := "no_weight"
	if support {
		tallyField = "yes_weight"
	}

	filter := bson.M{"_id": proposalID}
	update := bson.M{"$inc": bson.M{tallyField: weight}}

	res := db.collection(model.ProposalCollection).
		FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     fmt.Sprintf("%d", proposalID),
				Message: "proposal not found",
			}
		}
		return res.Err()
	}
	return nil
}

// MarkProposalExecuted flips the proposal to its terminal EXECUTED state,
// provided its current status is one of the qualified previous states. The
// transition is irreversible.
func (db *Database) MarkProposalExecuted(
	ctx context.Context,
	proposalID uint64,
	qualifiedPreviousStates []types.ProposalStatus,
) error {
	qualifiedStateStrs := make([]string, len(qualifiedPreviousStates))
	for i, state := range qualifiedPreviousStates {
		qualifiedStateStrs[i] = state.String()
	}

	filter := bson.M{
		"_id":    proposalID,
		"status": bson.M{"$in": qualifiedStateStrs},
	}
	update := bson.M{
		"$set": bson.M{
			"status":   types.StatusExecuted.String(),
			"executed": true,
		},
	}

	res := db.collection(model.ProposalCollection).
		FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     fmt.Sprintf("%d", proposalID),
				Message: "proposal not found or current state is not qualified states",
			}
		}
		return res.Err()
	}
	return nil
}
