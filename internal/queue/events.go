package queue

import (
	"github.com/google/uuid"
)

type EventType string

func (e EventType) String() string {
	return string(e)
}

const (
	EventStakeCommitted   EventType = "governance.stake.committed"
	EventProposalCreated  EventType = "governance.proposal.created"
	EventVoteCast         EventType = "governance.vote.cast"
	EventProposalExecuted EventType = "governance.proposal.executed"
)

// Event is the envelope published for every committed governance mutation.
// The routing key is the event type.
type Event struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	Height    uint64    `json:"height"`

	StakeCommitted   *StakeCommittedPayload   `json:"stake_committed,omitempty"`
	ProposalCreated  *ProposalCreatedPayload  `json:"proposal_created,omitempty"`
	VoteCast         *VoteCastPayload         `json:"vote_cast,omitempty"`
	ProposalExecuted *ProposalExecutedPayload `json:"proposal_executed,omitempty"`
}

type StakeCommittedPayload struct {
	Staker      string `json:"staker"`
	Amount      uint64 `json:"amount"`
	NewTotal    uint64 `json:"new_total"`
	TotalStaked uint64 `json:"total_staked"`
}

type ProposalCreatedPayload struct {
	ProposalID       uint64 `json:"proposal_id"`
	Creator          string `json:"creator"`
	Title            string `json:"title"`
	StartHeight      uint64 `json:"start_height"`
	EndHeight        uint64 `json:"end_height"`
	MinVotesRequired uint64 `json:"min_votes_required"`
}

type VoteCastPayload struct {
	ProposalID uint64 `json:"proposal_id"`
	Voter      string `json:"voter"`
	Support    bool   `json:"support"`
	Weight     uint64 `json:"weight"`
}

type ProposalExecutedPayload struct {
	ProposalID uint64 `json:"proposal_id"`
	YesWeight  uint64 `json:"yes_weight"`
	NoWeight   uint64 `json:"no_weight"`
}

func newEvent(eventType EventType, height uint64) Event {
	return Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Height:    height,
	}
}

func NewStakeCommittedEvent(height uint64, payload *StakeCommittedPayload) Event {
	ev := newEvent(EventStakeCommitted, height)
	ev.StakeCommitted = payload
	return ev
}

func NewProposalCreatedEvent(height uint64, payload *ProposalCreatedPayload) Event {
	ev := newEvent(EventProposalCreated, height)
	ev.ProposalCreated = payload
	return ev
}

func NewVoteCastEvent(height uint64, payload *VoteCastPayload) Event {
	ev := newEvent(EventVoteCast, height)
	ev.VoteCast = payload
	return ev
}

func NewProposalExecutedEvent(height uint64, payload *ProposalExecutedPayload) Event {
	ev := newEvent(EventProposalExecuted, height)
	ev.ProposalExecuted = payload
	return ev
}
