package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/stakegov/governance-engine/internal/queue"
)

// publishEvent emits one governance event for a mutation that has already
// committed. It is best-effort: a missing queue manager or a failed height
// lookup never affects the committed mutation.
func (s *Service) publishEvent(ctx context.Context, build func(height uint64) queue.Event) {
	if s.queueManager == nil {
		return
	}

	height, err := s.chain.GetTipHeight(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to resolve height for governance event")
		height = 0
	}

	s.queueManager.PushEvent(ctx, build(height))
}
