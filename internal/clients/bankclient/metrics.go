package bankclient

import (
	"context"
	"time"

	"github.com/stakegov/governance-engine/internal/observability/metrics"
)

type bankClientWithMetrics struct {
	bank BankInterface
}

func NewBankClientWithMetrics(bank BankInterface) *bankClientWithMetrics {
	return &bankClientWithMetrics{bank: bank}
}

func (b *bankClientWithMetrics) Transfer(ctx context.Context, from, to string, amount uint64) error {
	startTime := time.Now()
	err := b.bank.Transfer(ctx, from, to, amount)
	duration := time.Since(startTime)

	metrics.RecordBankClientLatency(duration, "Transfer", err != nil)
	return err
}
