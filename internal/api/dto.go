package api

import (
	"github.com/stakegov/governance-engine/internal/db/model"
)

type commitStakeRequest struct {
	Amount uint64 `json:"amount"`
}

type commitStakeResponse struct {
	Staker       string `json:"staker"`
	StakedAmount uint64 `json:"staked_amount"`
}

type createProposalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// VotingPeriod is in heights; the configured default applies when omitted.
	VotingPeriod *uint64 `json:"voting_period,omitempty"`
}

type createProposalResponse struct {
	ProposalID uint64 `json:"proposal_id"`
}

type castVoteRequest struct {
	Support *bool `json:"support"`
}

type proposalResponse struct {
	ProposalID       uint64 `json:"proposal_id"`
	Creator          string `json:"creator"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	StartHeight      uint64 `json:"start_height"`
	EndHeight        uint64 `json:"end_height"`
	Status           string `json:"status"`
	YesWeight        uint64 `json:"yes_weight"`
	NoWeight         uint64 `json:"no_weight"`
	Executed         bool   `json:"executed"`
	MinVotesRequired uint64 `json:"min_votes_required"`

	// Derived at query time; a proposal whose window elapsed unmet keeps its
	// ACTIVE status in storage and is distinguishable only through these.
	VotingClosed bool `json:"voting_closed"`
	Executable   bool `json:"executable"`
}

func newProposalResponse(p *model.ProposalDocument, currentHeight uint64, executable bool) proposalResponse {
	return proposalResponse{
		ProposalID:       p.ProposalID,
		Creator:          p.Creator,
		Title:            p.Title,
		Description:      p.Description,
		StartHeight:      p.StartHeight,
		EndHeight:        p.EndHeight,
		Status:           p.Status.String(),
		YesWeight:        p.YesWeight,
		NoWeight:         p.NoWeight,
		Executed:         p.Executed,
		MinVotesRequired: p.MinVotesRequired,
		VotingClosed:     p.Executed || currentHeight > p.EndHeight,
		Executable:       executable,
	}
}

type voteResponse struct {
	ProposalID uint64 `json:"proposal_id"`
	Voter      string `json:"voter"`
	Support    bool   `json:"support"`
	Weight     uint64 `json:"weight"`
}

func newVoteResponse(v *model.VoteDocument) voteResponse {
	return voteResponse{
		ProposalID: v.ProposalID,
		Voter:      v.Voter,
		Support:    v.Support,
		Weight:     v.Weight,
	}
}

type stakeResponse struct {
	Staker       string `json:"staker"`
	StakedAmount uint64 `json:"staked_amount"`
}

type totalStakedResponse struct {
	TotalStaked uint64 `json:"total_staked"`
}
