package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/stakegov/governance-engine/internal/db"
	"github.com/stakegov/governance-engine/internal/db/model"
	"github.com/stakegov/governance-engine/internal/types"
)

// InMemoryStore is a db.DbInterface backed by maps, for unit testing the
// service layer without a running mongo instance. It reproduces the same
// error types the real store returns.
type InMemoryStore struct {
	mu        sync.Mutex
	stakes    map[string]uint64
	proposals map[uint64]*model.ProposalDocument
	votes     map[string]*model.VoteDocument
	state     model.GovernanceState
}

var _ db.DbInterface = (*InMemoryStore)(nil)

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		stakes:    make(map[string]uint64),
		proposals: make(map[uint64]*model.ProposalDocument),
		votes:     make(map[string]*model.VoteDocument),
	}
}

func (s *InMemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *InMemoryStore) GetStakedAmount(ctx context.Context, stakerAddress string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stakes[stakerAddress], nil
}

func (s *InMemoryStore) IncrementStake(ctx context.Context, stakerAddress string, amount uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stakes[stakerAddress] += amount
	return s.stakes[stakerAddress], nil
}

func (s *InMemoryStore) GetGovernanceState(ctx context.Context) (*model.GovernanceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	return &state, nil
}

func (s *InMemoryStore) IncrementTotalStaked(ctx context.Context, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TotalStaked += amount
	return nil
}

func (s *InMemoryStore) NextProposalID(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ProposalCount++
	return s.state.ProposalCount, nil
}

func (s *InMemoryStore) SaveNewProposal(ctx context.Context, proposalDoc *model.ProposalDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.proposals[proposalDoc.ProposalID]; ok {
		return &db.DuplicateKeyError{
			Key:     fmt.Sprintf("%d", proposalDoc.ProposalID),
			Message: "proposal already exists",
		}
	}
	doc := *proposalDoc
	s.proposals[proposalDoc.ProposalID] = &doc
	return nil
}

func (s *InMemoryStore) GetProposalByID(ctx context.Context, proposalID uint64) (*model.ProposalDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	proposal, ok := s.proposals[proposalID]
	if !ok {
		return nil, &db.NotFoundError{
			Key:     fmt.Sprintf("%d", proposalID),
			Message: "proposal not found",
		}
	}
	doc := *proposal
	return &doc, nil
}

func (s *InMemoryStore) AddVoteWeight(ctx context.Context, proposalID uint64, support bool, weight uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	proposal, ok := s.proposals[proposalID]
	if !ok {
		return &db.NotFoundError{
			Key:     fmt.Sprintf("%d", proposalID),
			Message: "proposal not found",
		}
	}
	if support {
		proposal.YesWeight += weight
	} else {
		proposal.NoWeight += weight
	}
	return nil
}

func (s *InMemoryStore) MarkProposalExecuted(
	ctx context.Context, proposalID uint64, qualifiedPreviousStates []types.ProposalStatus,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	proposal, ok := s.proposals[proposalID]
	if !ok {
		return &db.NotFoundError{
			Key:     fmt.Sprintf("%d", proposalID),
			Message: "proposal not found",
		}
	}
	qualified := false
	for _, state := range qualifiedPreviousStates {
		if proposal.Status == state {
			qualified = true
			break
		}
	}
	if !qualified {
		return &db.NotFoundError{
			Key:     fmt.Sprintf("%d", proposalID),
			Message: "proposal not in qualified state",
		}
	}
	proposal.Status = types.StatusExecuted
	proposal.Executed = true
	return nil
}

func (s *InMemoryStore) SaveNewVote(ctx context.Context, voteDoc *model.VoteDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.votes[voteDoc.ID]; ok {
		return &db.DuplicateKeyError{
			Key:     voteDoc.ID,
			Message: "vote already cast",
		}
	}
	doc := *voteDoc
	s.votes[voteDoc.ID] = &doc
	return nil
}

func (s *InMemoryStore) GetVote(ctx context.Context, proposalID uint64, voter string) (*model.VoteDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vote, ok := s.votes[model.VoteID(proposalID, voter)]
	if !ok {
		return nil, &db.NotFoundError{
			Key:     model.VoteID(proposalID, voter),
			Message: "vote not found",
		}
	}
	doc := *vote
	return &doc, nil
}

func (s *InMemoryStore) HasVoted(ctx context.Context, proposalID uint64, voter string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.votes[model.VoteID(proposalID, voter)]
	return ok, nil
}

func (s *InMemoryStore) GetVotesByProposal(ctx context.Context, proposalID uint64) ([]*model.VoteDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var votes []*model.VoteDocument
	for _, vote := range s.votes {
		if vote.ProposalID == proposalID {
			doc := *vote
			votes = append(votes, &doc)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].ID < votes[j].ID })
	return votes, nil
}
