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

// CommitStake moves amount from the staker's account into custody and credits
// it to the staker's voting power. The bank transfer and the ledger update are
// one unit: a failed transfer leaves the ledger untouched.
func (s *Service) CommitStake(
	ctx context.Context, staker string, amount uint64,
) (newTotal uint64, eErr *types.Error) {
	defer func() { recordOp("CommitStake", eErr) }()

	if amount == 0 {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.InvalidAmount,
			"stake amount must be positive",
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bank.Transfer(ctx, staker, s.cfg.Bank.CustodyAccount, amount); err != nil {
		return 0, types.NewError(
			http.StatusBadGateway,
			types.InternalServiceError,
			fmt.Errorf("stake transfer failed: %w", err),
		)
	}

	newTotal, err := s.db.IncrementStake(ctx, staker, amount)
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to increment stake for %s: %w", staker, err),
		)
	}

	if err := s.db.IncrementTotalStaked(ctx, amount); err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to increment total staked: %w", err),
		)
	}

	state, err := s.db.GetGovernanceState(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to get governance state: %w", err),
		)
	}
	metrics.RecordTotalStaked(state.TotalStaked)

	log.Ctx(ctx).Info().
		Str("staker", staker).
		Uint64("amount", amount).
		Uint64("new_total", newTotal).
		Uint64("total_staked", state.TotalStaked).
		Msg("stake committed")

	s.publishEvent(ctx, func(height uint64) queue.Event {
		return queue.NewStakeCommittedEvent(height, &queue.StakeCommittedPayload{
			Staker:      staker,
			Amount:      amount,
			NewTotal:    newTotal,
			TotalStaked: state.TotalStaked,
		})
	})

	return newTotal, nil
}

// GetStakedAmount returns the participant's current stake; zero when the
// participant never staked.
func (s *Service) GetStakedAmount(
	ctx context.Context, staker string,
) (uint64, *types.Error) {
	amount, err := s.db.GetStakedAmount(ctx, staker)
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to get staked amount for %s: %w", staker, err),
		)
	}
	return amount, nil
}

// GetTotalStaked returns the global total of all committed stake.
func (s *Service) GetTotalStaked(ctx context.Context) (uint64, *types.Error) {
	state, err := s.db.GetGovernanceState(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to get governance state: %w", err),
		)
	}
	return state.TotalStaked, nil
}
