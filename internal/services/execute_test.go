package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakegov/governance-engine/internal/types"
	"github.com/stakegov/governance-engine/testutil"
)

func TestExecuteProposal(t *testing.T) {
	ctx := context.Background()
	h := newTestHarness(t)
	creator := testutil.RandomStakerAddress()
	proposalID := stakedProposal(t, h, creator, 100_000, 144)

	require.Nil(t, h.service.CastVote(ctx, creator, proposalID, true))

	// the window must fully elapse first
	eErr := h.service.ExecuteProposal(ctx, creator, proposalID)
	require.NotNil(t, eErr)
	assert.Equal(t, http.StatusConflict, eErr.StatusCode)
	assert.Equal(t, types.InvalidState, eErr.ErrorCode)

	h.chain.SetTipHeight(1144)
	require.Nil(t, h.service.ExecuteProposal(ctx, creator, proposalID))

	proposal, eErr := h.service.GetProposal(ctx, proposalID)
	require.Nil(t, eErr)
	assert.True(t, proposal.Executed)
	assert.Equal(t, types.StatusExecuted, proposal.Status)
}

func TestExecuteProposal_Twice(t *testing.T) {
	ctx := context.Background()
	h := newTestHarness(t)
	creator := testutil.RandomStakerAddress()
	proposalID := stakedProposal(t, h, creator, 100_000, 144)

	require.Nil(t, h.service.CastVote(ctx, creator, proposalID, true))

	h.chain.SetTipHeight(1200)
	require.Nil(t, h.service.ExecuteProposal(ctx, creator, proposalID))

	// execution is a one-shot terminal transition
	eErr := h.service.ExecuteProposal(ctx, testutil.RandomStakerAddress(), proposalID)
	require.NotNil(t, eErr)
	assert.Equal(t, http.StatusConflict, eErr.StatusCode)
	assert.Equal(t, types.InvalidState, eErr.ErrorCode)
}

func TestExecuteProposal_QuorumNotMet(t *testing.T) {
	ctx := context.Background()
	h := newTestHarness(t)
	creator := testutil.RandomStakerAddress()
	proposalID := stakedProposal(t, h, creator, 100_000, 144)

	// a single 9,000 vote is under the 10,000 quorum bar
	voter := testutil.RandomStakerAddress()
	_, eErr := h.service.CommitStake(ctx, voter, 9_000)
	require.Nil(t, eErr)
	require.Nil(t, h.service.CastVote(ctx, voter, proposalID, true))

	h.chain.SetTipHeight(1200)
	executable, _, eErr := h.service.IsExecutable(ctx, proposalID)
	require.Nil(t, eErr)
	assert.False(t, executable)

	eErr = h.service.ExecuteProposal(ctx, creator, proposalID)
	require.NotNil(t, eErr)
	assert.Equal(t, types.InvalidState, eErr.ErrorCode)
}

func TestExecuteProposal_MajorityNotMet(t *testing.T) {
	ctx := context.Background()
	h := newTestHarness(t)
	creator := testutil.RandomStakerAddress()
	proposalID := stakedProposal(t, h, creator, 100_000, 144)

	against := testutil.RandomStakerAddress()
	_, eErr := h.service.CommitStake(ctx, against, 200_000)
	require.Nil(t, eErr)

	require.Nil(t, h.service.CastVote(ctx, creator, proposalID, true))
	require.Nil(t, h.service.CastVote(ctx, against, proposalID, false))

	h.chain.SetTipHeight(1200)
	eErr = h.service.ExecuteProposal(ctx, creator, proposalID)
	require.NotNil(t, eErr)
	assert.Equal(t, types.InvalidState, eErr.ErrorCode)
}

func TestIsExecutable_ReportsDecisionHeight(t *testing.T) {
	ctx := context.Background()
	h := newTestHarness(t)
	creator := testutil.RandomStakerAddress()
	proposalID := stakedProposal(t, h, creator, 100_000, 144)

	require.Nil(t, h.service.CastVote(ctx, creator, proposalID, true))

	h.chain.SetTipHeight(1300)
	executable, height, eErr := h.service.IsExecutable(ctx, proposalID)
	require.Nil(t, eErr)
	assert.True(t, executable)
	assert.Equal(t, uint64(1300), height)
}
