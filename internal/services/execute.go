package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakegov/governance-engine/internal/observability/metrics"
	"github.com/stakegov/governance-engine/internal/queue"
	"github.com/stakegov/governance-engine/internal/types"
)

// IsExecutable reports whether the proposal currently qualifies for
// execution: quorum met against the creation-time snapshot, strict majority,
// not yet executed, and the voting window fully elapsed. It also returns the
// height the decision was taken at.
func (s *Service) IsExecutable(
	ctx context.Context, proposalID uint64,
) (bool, uint64, *types.Error) {
	proposal, eErr := s.GetProposal(ctx, proposalID)
	if eErr != nil {
		return false, 0, eErr
	}

	currentHeight, err := s.chain.GetTipHeight(ctx)
	if err != nil {
		return false, 0, types.NewInternalServiceError(
			fmt.Errorf("failed to get chain tip height: %w", err),
		)
	}

	return proposal.IsExecutable(currentHeight), currentHeight, nil
}

// ExecuteProposal flips a qualifying proposal to its terminal executed state.
// Deliberately, no authorization restricts the caller: once a proposal
// qualifies, anyone may trigger execution, and the transition happens at most
// once.
func (s *Service) ExecuteProposal(
	ctx context.Context, caller string, proposalID uint64,
) (eErr *types.Error) {
	defer func() { recordOp("ExecuteProposal", eErr) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, eErr := s.GetProposal(ctx, proposalID)
	if eErr != nil {
		return eErr
	}

	currentHeight, err := s.chain.GetTipHeight(ctx)
	if err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to get chain tip height: %w", err),
		)
	}

	if !proposal.IsExecutable(currentHeight) {
		return types.NewErrorWithMsg(
			http.StatusConflict,
			types.InvalidState,
			fmt.Sprintf("proposal %d is not executable at height %d", proposalID, currentHeight),
		)
	}

	err = s.db.MarkProposalExecuted(ctx, proposalID, types.QualifiedStatesForExecution())
	if err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to mark proposal %d executed: %w", proposalID, err),
		)
	}

	metrics.RecordProposalExecuted()

	log.Ctx(ctx).Info().
		Uint64("proposal_id", proposalID).
		Str("caller", caller).
		Uint64("yes_weight", proposal.YesWeight).
		Uint64("no_weight", proposal.NoWeight).
		Uint64("height", currentHeight).
		Msg("proposal executed")

	s.publishEvent(ctx, func(height uint64) queue.Event {
		return queue.NewProposalExecutedEvent(height, &queue.ProposalExecutedPayload{
			ProposalID: proposalID,
			YesWeight:  proposal.YesWeight,
			NoWeight:   proposal.NoWeight,
		})
	})

	return nil
}
