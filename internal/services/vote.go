package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakegov/governance-engine/internal/db"
	"github.com/stakegov/governance-engine/internal/db/model"
	"github.com/stakegov/governance-engine/internal/queue"
	"github.com/stakegov/governance-engine/internal/types"
)

// CastVote records one weighted vote for (proposal, voter). The weight is the
// voter's stake read at cast time, not at proposal creation: stake committed
// after casting never changes an already recorded vote, but it does back
// votes on other proposals immediately.
//
// The precondition order is fixed: unknown proposal, closed proposal, zero
// stake, duplicate vote. The first violation is the reported error and
// nothing is written.
func (s *Service) CastVote(
	ctx context.Context, voter string, proposalID uint64, support bool,
) (eErr *types.Error) {
	defer func() { recordOp("CastVote", eErr) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, err := s.db.GetProposalByID(ctx, proposalID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusNotFound,
				types.ProposalNotFound,
				fmt.Sprintf("proposal %d not found", proposalID),
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to get proposal %d: %w", proposalID, err),
		)
	}

	currentHeight, err := s.chain.GetTipHeight(ctx)
	if err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to get chain tip height: %w", err),
		)
	}
	if !proposal.VotingOpen(currentHeight) {
		return types.NewErrorWithMsg(
			http.StatusForbidden,
			types.ProposalNotActive,
			fmt.Sprintf("proposal %d is not accepting votes at height %d", proposalID, currentHeight),
		)
	}

	weight, err := s.db.GetStakedAmount(ctx, voter)
	if err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to get staked amount for %s: %w", voter, err),
		)
	}
	if weight == 0 {
		return types.NewErrorWithMsg(
			http.StatusForbidden,
			types.InsufficientStake,
			"voting requires a positive stake",
		)
	}

	hasVoted, err := s.db.HasVoted(ctx, proposalID, voter)
	if err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to check vote record: %w", err),
		)
	}
	if hasVoted {
		return types.NewErrorWithMsg(
			http.StatusConflict,
			types.AlreadyVoted,
			fmt.Sprintf("%s already voted on proposal %d", voter, proposalID),
		)
	}

	voteDoc := model.NewVoteDocument(proposalID, voter, support, weight)
	if err := s.db.SaveNewVote(ctx, voteDoc); err != nil {
		// the unique vote key is the backstop for the duplicate check above
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusConflict,
				types.AlreadyVoted,
				fmt.Sprintf("%s already voted on proposal %d", voter, proposalID),
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to save vote %s: %w", voteDoc.ID, err),
		)
	}

	if err := s.db.AddVoteWeight(ctx, proposalID, support, weight); err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to add vote weight to proposal %d: %w", proposalID, err),
		)
	}

	log.Ctx(ctx).Info().
		Uint64("proposal_id", proposalID).
		Str("voter", voter).
		Bool("support", support).
		Uint64("weight", weight).
		Msg("vote cast")

	s.publishEvent(ctx, func(height uint64) queue.Event {
		return queue.NewVoteCastEvent(height, &queue.VoteCastPayload{
			ProposalID: proposalID,
			Voter:      voter,
			Support:    support,
			Weight:     weight,
		})
	})

	return nil
}

// GetVote fetches the vote record for (proposal, voter).
func (s *Service) GetVote(
	ctx context.Context, proposalID uint64, voter string,
) (*model.VoteDocument, *types.Error) {
	vote, err := s.db.GetVote(ctx, proposalID, voter)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				fmt.Sprintf("no vote by %s on proposal %d", voter, proposalID),
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to get vote: %w", err),
		)
	}
	return vote, nil
}

// GetVotes lists all votes cast on a proposal.
func (s *Service) GetVotes(
	ctx context.Context, proposalID uint64,
) ([]*model.VoteDocument, *types.Error) {
	if _, eErr := s.GetProposal(ctx, proposalID); eErr != nil {
		return nil, eErr
	}

	votes, err := s.db.GetVotesByProposal(ctx, proposalID)
	if err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to list votes for proposal %d: %w", proposalID, err),
		)
	}
	return votes, nil
}
