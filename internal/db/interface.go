package db

import (
	"context"

	"github.com/stakegov/governance-engine/internal/db/model"
	"github.com/stakegov/governance-engine/internal/types"
)

type DbInterface interface {
	Ping(ctx context.Context) error

	// stake ledger
	GetStakedAmount(ctx context.Context, stakerAddress string) (uint64, error)
	IncrementStake(ctx context.Context, stakerAddress string, amount uint64) (uint64, error)

	// global counters
	GetGovernanceState(ctx context.Context) (*model.GovernanceState, error)
	IncrementTotalStaked(ctx context.Context, amount uint64) error
	NextProposalID(ctx context.Context) (uint64, error)

	// proposal registry
	SaveNewProposal(ctx context.Context, proposalDoc *model.ProposalDocument) error
	GetProposalByID(ctx context.Context, proposalID uint64) (*model.ProposalDocument, error)
	AddVoteWeight(ctx context.Context, proposalID uint64, support bool, weight uint64) error
	MarkProposalExecuted(ctx context.Context, proposalID uint64, qualifiedPreviousStates []types.ProposalStatus) error

	// vote records
	SaveNewVote(ctx context.Context, voteDoc *model.VoteDocument) error
	GetVote(ctx context.Context, proposalID uint64, voter string) (*model.VoteDocument, error)
	HasVoted(ctx context.Context, proposalID uint64, voter string) (bool, error)
	GetVotesByProposal(ctx context.Context, proposalID uint64) ([]*model.VoteDocument, error)
}
