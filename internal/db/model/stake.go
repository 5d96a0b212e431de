package model

const StakeCollection = "stakes"

// StakeDocument tracks a single participant's committed stake. The staked
// amount only ever increases; there is no withdrawal path.
type StakeDocument struct {
	StakerAddress string `bson:"_id"` // Primary key
	StakedAmount  uint64 `bson:"staked_amount"`
}

func NewStakeDocument(stakerAddress string, stakedAmount uint64) *StakeDocument {
	return &StakeDocument{
		StakerAddress: stakerAddress,
		StakedAmount:  stakedAmount,
	}
}
