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

const (
	maxTitleLength       = 50
	maxDescriptionLength = 500

	// quorumDivisor fixes the quorum fraction at 10% of total staked. It is a
	// deployment constant, not a runtime parameter.
	quorumDivisor = 10
)

// CreateProposal registers a new proposal. The quorum bar is snapshotted from
// the total stake outstanding at this instant, so later staking activity
// cannot move an open proposal's bar.
func (s *Service) CreateProposal(
	ctx context.Context, creator, title, description string, votingPeriod uint64,
) (proposalID uint64, eErr *types.Error) {
	defer func() { recordOp("CreateProposal", eErr) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" || len(title) > maxTitleLength {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.InvalidTitle,
			fmt.Sprintf("title must be between 1 and %d characters", maxTitleLength),
		)
	}
	if description == "" || len(description) > maxDescriptionLength {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.InvalidDescription,
			fmt.Sprintf("description must be between 1 and %d characters", maxDescriptionLength),
		)
	}

	creatorStake, err := s.db.GetStakedAmount(ctx, creator)
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to get staked amount for %s: %w", creator, err),
		)
	}
	if creatorStake < s.cfg.Governance.MinProposalStake {
		return 0, types.NewErrorWithMsg(
			http.StatusForbidden,
			types.InsufficientStake,
			fmt.Sprintf("proposal creation requires a stake of at least %d", s.cfg.Governance.MinProposalStake),
		)
	}

	if votingPeriod == 0 {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.InvalidAmount,
			"voting period must be positive",
		)
	}

	currentHeight, err := s.chain.GetTipHeight(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to get chain tip height: %w", err),
		)
	}

	state, err := s.db.GetGovernanceState(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to get governance state: %w", err),
		)
	}

	proposalID, err = s.db.NextProposalID(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to allocate proposal id: %w", err),
		)
	}

	proposal := &model.ProposalDocument{
		ProposalID:       proposalID,
		Creator:          creator,
		Title:            title,
		Description:      description,
		StartHeight:      currentHeight,
		EndHeight:        currentHeight + votingPeriod,
		Status:           types.StatusActive,
		Executed:         false,
		MinVotesRequired: state.TotalStaked / quorumDivisor,
	}
	if err := s.db.SaveNewProposal(ctx, proposal); err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to save proposal %d: %w", proposalID, err),
		)
	}

	log.Ctx(ctx).Info().
		Uint64("proposal_id", proposalID).
		Str("creator", creator).
		Uint64("start_height", proposal.StartHeight).
		Uint64("end_height", proposal.EndHeight).
		Uint64("min_votes_required", proposal.MinVotesRequired).
		Msg("proposal created")

	s.publishEvent(ctx, func(height uint64) queue.Event {
		return queue.NewProposalCreatedEvent(height, &queue.ProposalCreatedPayload{
			ProposalID:       proposalID,
			Creator:          creator,
			Title:            title,
			StartHeight:      proposal.StartHeight,
			EndHeight:        proposal.EndHeight,
			MinVotesRequired: proposal.MinVotesRequired,
		})
	})

	return proposalID, nil
}

// GetProposal fetches a proposal by id.
func (s *Service) GetProposal(
	ctx context.Context, proposalID uint64,
) (*model.ProposalDocument, *types.Error) {
	proposal, err := s.db.GetProposalByID(ctx, proposalID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound,
				types.ProposalNotFound,
				fmt.Sprintf("proposal %d not found", proposalID),
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to get proposal %d: %w", proposalID, err),
		)
	}
	return proposal, nil
}
