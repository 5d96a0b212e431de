package config

import (
	"errors"
)

const (
	defaultMinProposalStake    = 100_000
	defaultVotingPeriodHeights = 144
)

// GovernanceConfig holds the deployment-fixed governance parameters. The
// quorum fraction is deliberately not configurable here; it is a code
// constant in the services package.
type GovernanceConfig struct {
	// MinProposalStake is the stake a participant must hold to create a proposal.
	MinProposalStake uint64 `mapstructure:"min-proposal-stake"`
	// VotingPeriod is the default proposal duration in heights, used when a
	// create request does not carry an explicit duration.
	VotingPeriod uint64 `mapstructure:"voting-period"`
}

func DefaultGovernanceConfig() *GovernanceConfig {
	return &GovernanceConfig{
		MinProposalStake: defaultMinProposalStake,
		VotingPeriod:     defaultVotingPeriodHeights,
	}
}

func (cfg *GovernanceConfig) Validate() error {
	if cfg.MinProposalStake == 0 {
		return errors.New("min-proposal-stake must be positive")
	}
	if cfg.VotingPeriod == 0 {
		return errors.New("voting-period must be positive")
	}

	return nil
}
