package services

import (
	"context"
	"sync"

	"github.com/stakegov/governance-engine/internal/clients/bankclient"
	"github.com/stakegov/governance-engine/internal/clients/chainclient"
	"github.com/stakegov/governance-engine/internal/config"
	"github.com/stakegov/governance-engine/internal/db"
	"github.com/stakegov/governance-engine/internal/observability/metrics"
	"github.com/stakegov/governance-engine/internal/queue"
	"github.com/stakegov/governance-engine/internal/types"
)

// Service is the governance core: the stake ledger, proposal registry, vote
// tally engine and execution oracle over a single exclusively-owned store.
type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	bank         bankclient.BankInterface
	chain        chainclient.ChainInterface
	queueManager *queue.QueueManager

	// mu serializes mutating operations end to end (validate + write), giving
	// every mutation the single global total order the tally invariants
	// assume. Reads do not take it.
	mu sync.Mutex
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	bank bankclient.BankInterface,
	chain chainclient.ChainInterface,
	qm *queue.QueueManager,
) *Service {
	return &Service{
		cfg:          cfg,
		db:           db,
		bank:         bank,
		chain:        chain,
		queueManager: qm,
	}
}

// Ping verifies the backing store is reachable.
func (s *Service) Ping(ctx context.Context) *types.Error {
	if err := s.db.Ping(ctx); err != nil {
		return types.NewInternalServiceError(err)
	}
	return nil
}

// recordOp reports one finished governance operation to the metrics registry.
func recordOp(operation string, eErr *types.Error) {
	metrics.RecordGovernanceOperation(operation, eErr != nil)
}
