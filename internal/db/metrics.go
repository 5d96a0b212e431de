package db

import (
	"context"
	"time"

	"github.com/stakegov/governance-engine/internal/db/model"
	"github.com/stakegov/governance-engine/internal/observability/metrics"
	"github.com/stakegov/governance-engine/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetStakedAmount(ctx context.Context, stakerAddress string) (result uint64, err error) {
	//nolint:errcheck
	d.run("GetStakedAmount", func() error {
		result, err = d.db.GetStakedAmount(ctx, stakerAddress)
		return err
	})
	return
}

func (d *DbWithMetrics) IncrementStake(ctx context.Context, stakerAddress string, amount uint64) (result uint64, err error) {
	//nolint:errcheck
	d.run("IncrementStake", func() error {
		result, err = d.db.IncrementStake(ctx, stakerAddress, amount)
		return err
	})
	return
}

func (d *DbWithMetrics) GetGovernanceState(ctx context.Context) (result *model.GovernanceState, err error) {
	//nolint:errcheck
	d.run("GetGovernanceState", func() error {
		result, err = d.db.GetGovernanceState(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) IncrementTotalStaked(ctx context.Context, amount uint64) error {
	return d.run("IncrementTotalStaked", func() error {
		return d.db.IncrementTotalStaked(ctx, amount)
	})
}

func (d *DbWithMetrics) NextProposalID(ctx context.Context) (result uint64, err error) {
	//nolint:errcheck
	d.run("NextProposalID", func() error {
		result, err = d.db.NextProposalID(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveNewProposal(ctx context.Context, proposalDoc *model.ProposalDocument) error {
	return d.run("SaveNewProposal", func() error {
		return d.db.SaveNewProposal(ctx, proposalDoc)
	})
}

func (d *DbWithMetrics) GetProposalByID(ctx context.Context, proposalID uint64) (result *model.ProposalDocument, err error) {
	//nolint:errcheck
	d.run("GetProposalByID", func() error {
		result, err = d.db.GetProposalByID(ctx, proposalID)
		return err
	})
	return
}

func (d *DbWithMetrics) AddVoteWeight(ctx context.Context, proposalID uint64, support bool, weight uint64) error {
	return d.run("AddVoteWeight", func() error {
		return d.db.AddVoteWeight(ctx, proposalID, support, weight)
	})
}

func (d *DbWithMetrics) MarkProposalExecuted(ctx context.Context, proposalID uint64, qualifiedPreviousStates []types.ProposalStatus) error {
	return d.run("MarkProposalExecuted", func() error {
		return d.db.MarkProposalExecuted(ctx, proposalID, qualifiedPreviousStates)
	})
}

func (d *DbWithMetrics) SaveNewVote(ctx context.Context, voteDoc *model.VoteDocument) error {
	return d.run("SaveNewVote", func() error {
		return d.db.SaveNewVote(ctx, voteDoc)
	})
}

func (d *DbWithMetrics) GetVote(ctx context.Context, proposalID uint64, voter string) (result *model.VoteDocument, err error) {
	//nolint:errcheck
	d.run("GetVote", func() error {
		result, err = d.db.GetVote(ctx, proposalID, voter)
		return err
	})
	return
}

func (d *DbWithMetrics) HasVoted(ctx context.Context, proposalID uint64, voter string) (result bool, err error) {
	//nolint:errcheck
	d.run("HasVoted", func() error {
		result, err = d.db.HasVoted(ctx, proposalID, voter)
		return err
	})
	return
}

func (d *DbWithMetrics) GetVotesByProposal(ctx context.Context, proposalID uint64) (result []*model.VoteDocument, err error) {
	//nolint:errcheck
	d.run("GetVotesByProposal", func() error {
		result, err = d.db.GetVotesByProposal(ctx, proposalID)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
