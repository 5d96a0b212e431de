package model

import (
	"github.com/stakegov/governance-engine/internal/types"
)

const ProposalCollection = "proposals"

type ProposalDocument struct {
	ProposalID  uint64               `bson:"_id"` // Primary key, monotonic
	Creator     string               `bson:"creator"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	StartHeight uint64               `bson:"start_height"`
	EndHeight   uint64               `bson:"end_height"`
	Status      types.ProposalStatus `bson:"status"`
	YesWeight   uint64               `bson:"yes_weight"`
	NoWeight    uint64               `bson:"no_weight"`
	Executed    bool                 `bson:"executed"`
	// MinVotesRequired is the quorum bar snapshotted from total_staked at
	// creation. It does not track staking that happens during the window.
	MinVotesRequired uint64 `bson:"min_votes_required"`
}

// TotalVotes is the combined weight cast on the proposal so far.
func (p *ProposalDocument) TotalVotes() uint64 {
	return p.YesWeight + p.NoWeight
}

// IsExecutable reports whether the proposal qualifies for execution at the
// given height: quorum met, strict majority (a tie fails), not yet executed,
// and the voting window fully elapsed.
func (p *ProposalDocument) IsExecutable(currentHeight uint64) bool {
	if p.Executed {
		return false
	}
	if currentHeight < p.EndHeight {
		return false
	}
	if p.TotalVotes() < p.MinVotesRequired {
		return false
	}
	return p.YesWeight > p.NoWeight
}

// VotingOpen reports whether a vote may be cast at the given height. Voting
// at exactly the end height is allowed.
func (p *ProposalDocument) VotingOpen(currentHeight uint64) bool {
	if p.Status != types.StatusActive {
		return false
	}
	return currentHeight >= p.StartHeight && currentHeight <= p.EndHeight
}
