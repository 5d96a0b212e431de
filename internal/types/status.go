package types

// Enum values for Proposal Status
type ProposalStatus string

const (
	StatusActive   ProposalStatus = "ACTIVE"
	StatusExecuted ProposalStatus = "EXECUTED"
)

func (s ProposalStatus) String() string {
	return string(s)
}

// There is deliberately no terminal "rejected" status: a proposal whose voting
// window elapses without meeting quorum or majority stays ACTIVE in storage and
// its failure is derived at query time from the current height.

// QualifiedStatesForExecution returns the statuses a proposal may hold
// immediately before the execute transition.
func QualifiedStatesForExecution() []ProposalStatus {
	return []ProposalStatus{StatusActive}
}
