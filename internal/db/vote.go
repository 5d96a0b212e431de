package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakegov/governance-engine/internal/db/model"
)

func (db *Database) SaveNewVote(
	ctx context.Context, voteDoc *model.VoteDocument,
) error {
	_, err := db.collection(model.VoteCollection).
		InsertOne(ctx, voteDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     voteDoc.ID,
						Message: "vote already cast",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetVote(
	ctx context.Context, proposalID uint64, voter string,
) (*model.VoteDocument, error) {
	voteID := model.VoteID(proposalID, voter)

	var vote model.VoteDocument
	err := db.collection(model.VoteCollection).
		FindOne(ctx, bson.M{"_id": voteID}).
		Decode(&vote)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     voteID,
				Message: "vote not found",
			}
		}
		return nil, err
	}
	return &vote, nil
}

// HasVoted reports whether a vote record exists for (proposal, voter).
func (db *Database) HasVoted(
	ctx context.Context, proposalID uint64, voter string,
) (bool, error) {
	_, err := db.GetVote(ctx, proposalID, voter)
	if err != nil {
		if IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (db *Database) GetVotesByProposal(
	ctx context.Context, proposalID uint64,
) ([]*model.VoteDocument, error) {
	filter := bson.M{"proposal_id": proposalID}
	opts := options.Find().SetSort(bson.M{"_id": 1})

	cursor, err := db.collection(model.VoteCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find votes for proposal %d: %w", proposalID, err)
	}
	defer cursor.Close(ctx)

	var votes []*model.VoteDocument
	if err := cursor.All(ctx, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}
