package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakegov/governance-engine/internal/types"
	"github.com/stakegov/governance-engine/testutil"
)

// TestGovernanceLifecycle drives the full flow end to end: two participants
// fund the ledger, one proposal runs its course, votes split 60/40 and the
// proposal executes once the window elapses.
func TestGovernanceLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newTestHarness(t)

	alice := testutil.RandomStakerAddress()
	bob := testutil.RandomStakerAddress()

	_, eErr := h.service.CommitStake(ctx, alice, 60_000)
	require.Nil(t, eErr)
	_, eErr = h.service.CommitStake(ctx, bob, 40_000)
	require.Nil(t, eErr)

	total, eErr := h.service.GetTotalStaked(ctx)
	require.Nil(t, eErr)
	require.Equal(t, uint64(100_000), total)

	// quorum bar snapshots 10% of the 100,000 outstanding
	proposalID, eErr := h.service.CreateProposal(ctx, alice, "Fund the grants pool", "Allocate treasury to grants.", 144)
	require.Nil(t, eErr)
	require.Equal(t, uint64(1), proposalID)

	proposal, eErr := h.service.GetProposal(ctx, proposalID)
	require.Nil(t, eErr)
	assert.Equal(t, uint64(10_000), proposal.MinVotesRequired)

	require.Nil(t, h.service.CastVote(ctx, alice, proposalID, true))
	require.Nil(t, h.service.CastVote(ctx, bob, proposalID, false))

	proposal, eErr = h.service.GetProposal(ctx, proposalID)
	require.Nil(t, eErr)
	assert.Equal(t, uint64(60_000), proposal.YesWeight)
	assert.Equal(t, uint64(40_000), proposal.NoWeight)

	// a repeat vote is rejected and moves nothing
	eErr = h.service.CastVote(ctx, bob, proposalID, true)
	require.NotNil(t, eErr)
	assert.Equal(t, types.AlreadyVoted, eErr.ErrorCode)

	proposal, eErr = h.service.GetProposal(ctx, proposalID)
	require.Nil(t, eErr)
	assert.Equal(t, uint64(40_000), proposal.NoWeight)

	// unstaked participants cannot vote
	eErr = h.service.CastVote(ctx, testutil.RandomStakerAddress(), proposalID, true)
	require.NotNil(t, eErr)
	assert.Equal(t, types.InsufficientStake, eErr.ErrorCode)

	// quorum 100,000 >= 10,000 and majority 60,000 > 40,000 at the end height
	h.chain.SetTipHeight(1144)
	executable, _, eErr := h.service.IsExecutable(ctx, proposalID)
	require.Nil(t, eErr)
	assert.True(t, executable)

	require.Nil(t, h.service.ExecuteProposal(ctx, bob, proposalID))

	proposal, eErr = h.service.GetProposal(ctx, proposalID)
	require.Nil(t, eErr)
	assert.True(t, proposal.Executed)
	assert.Equal(t, types.StatusExecuted, proposal.Status)
}

// TestTiedProposalNeverExecutes covers the deliberate absence of a terminal
// failure state: a tied proposal stays ACTIVE in storage forever and is only
// distinguishable through the derived executability check.
func TestTiedProposalNeverExecutes(t *testing.T) {
	ctx := context.Background()
	h := newTestHarness(t)

	alice := testutil.RandomStakerAddress()
	bob := testutil.RandomStakerAddress()

	_, eErr := h.service.CommitStake(ctx, alice, 100_000)
	require.Nil(t, eErr)
	_, eErr = h.service.CommitStake(ctx, bob, 100_000)
	require.Nil(t, eErr)

	proposalID, eErr := h.service.CreateProposal(ctx, alice, "Tied outcome", "Ends in a dead heat.", 144)
	require.Nil(t, eErr)

	require.Nil(t, h.service.CastVote(ctx, alice, proposalID, true))
	require.Nil(t, h.service.CastVote(ctx, bob, proposalID, false))

	// a tie fails the strict-majority check no matter how long we wait
	for _, height := range []uint64{1144, 1145, 10_000, 1_000_000} {
		h.chain.SetTipHeight(height)
		executable, _, eErr := h.service.IsExecutable(ctx, proposalID)
		require.Nil(t, eErr)
		assert.False(t, executable)
	}

	eErr = h.service.ExecuteProposal(ctx, alice, proposalID)
	require.NotNil(t, eErr)
	assert.Equal(t, types.InvalidState, eErr.ErrorCode)

	proposal, eErr := h.service.GetProposal(ctx, proposalID)
	require.Nil(t, eErr)
	assert.Equal(t, types.StatusActive, proposal.Status)
	assert.False(t, proposal.Executed)
}
