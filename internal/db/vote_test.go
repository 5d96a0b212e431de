//go:build integration

package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakegov/governance-engine/internal/db"
	"github.com/stakegov/governance-engine/internal/db/model"
	"github.com/stakegov/governance-engine/testutil"
)

func TestVoteRecords(t *testing.T) {
	ctx := context.Background()
	proposalID, err := testDB.NextProposalID(ctx)
	require.NoError(t, err)
	voter := testutil.RandomStakerAddress()

	hasVoted, err := testDB.HasVoted(ctx, proposalID, voter)
	require.NoError(t, err)
	assert.False(t, hasVoted)

	vote := model.NewVoteDocument(proposalID, voter, true, 5_000)
	require.NoError(t, testDB.SaveNewVote(ctx, vote))

	// the (proposal, voter) key is unique, a second insert must fail
	err = testDB.SaveNewVote(ctx, model.NewVoteDocument(proposalID, voter, false, 5_000))
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKeyError(err))

	stored, err := testDB.GetVote(ctx, proposalID, voter)
	require.NoError(t, err)
	assert.True(t, stored.Support)
	assert.Equal(t, uint64(5_000), stored.Weight)

	hasVoted, err = testDB.HasVoted(ctx, proposalID, voter)
	require.NoError(t, err)
	assert.True(t, hasVoted)

	_, err = testDB.GetVote(ctx, proposalID, testutil.RandomStakerAddress())
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))
}

func TestGetVotesByProposal(t *testing.T) {
	ctx := context.Background()
	proposalID, err := testDB.NextProposalID(ctx)
	require.NoError(t, err)

	votes, err := testDB.GetVotesByProposal(ctx, proposalID)
	require.NoError(t, err)
	assert.Empty(t, votes)

	var total uint64
	for i := 0; i < 5; i++ {
		weight := testutil.RandomStakeAmount()
		total += weight
		vote := model.NewVoteDocument(proposalID, testutil.RandomStakerAddress(), i%2 == 0, weight)
		require.NoError(t, testDB.SaveNewVote(ctx, vote))
	}

	votes, err = testDB.GetVotesByProposal(ctx, proposalID)
	require.NoError(t, err)
	require.Len(t, votes, 5)

	var sum uint64
	for _, v := range votes {
		assert.Equal(t, proposalID, v.ProposalID)
		sum += v.Weight
	}
	assert.Equal(t, total, sum)
}
