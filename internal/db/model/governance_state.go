package model

const GovernanceStateCollection = "governance_state"

// GovernanceState is a singleton document holding the global counters:
// the proposal id source and the running sum of all stake records.
type GovernanceState struct {
	ProposalCount uint64 `bson:"proposal_count"`
	TotalStaked   uint64 `bson:"total_staked"`
}
