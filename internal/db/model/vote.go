package model

import "fmt"

const VoteCollection = "votes"

// VoteDocument records a single cast vote. The primary key is derived from
// (proposal id, voter) so the unique index doubles as the double-vote guard.
// Weight is the voter's stake at the moment of casting; staking afterwards
// never changes an already recorded vote.
type VoteDocument struct {
	ID         string `bson:"_id"` // Primary key, "<proposal_id>:<voter>"
	ProposalID uint64 `bson:"proposal_id"`
	Voter      string `bson:"voter"`
	Support    bool   `bson:"support"`
	Weight     uint64 `bson:"weight"`
}

func NewVoteDocument(proposalID uint64, voter string, support bool, weight uint64) *VoteDocument {
	return &VoteDocument{
		ID:         VoteID(proposalID, voter),
		ProposalID: proposalID,
		Voter:      voter,
		Support:    support,
		Weight:     weight,
	}
}

func VoteID(proposalID uint64, voter string) string {
	return fmt.Sprintf("%d:%s", proposalID, voter)
}
