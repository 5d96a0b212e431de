package chainclient

import (
	"context"
	"time"

	"github.com/stakegov/governance-engine/internal/observability/metrics"
)

type chainClientWithMetrics struct {
	chain ChainInterface
}

func NewChainClientWithMetrics(chain ChainInterface) *chainClientWithMetrics {
	return &chainClientWithMetrics{chain: chain}
}

func (c *chainClientWithMetrics) GetTipHeight(ctx context.Context) (uint64, error) {
	startTime := time.Now()
	height, err := c.chain.GetTipHeight(ctx)
	duration := time.Since(startTime)

	metrics.RecordChainClientLatency(duration, "GetTipHeight", err != nil)
	if err == nil {
		metrics.RecordChainTipHeight(height)
	}
	return height, err
}
