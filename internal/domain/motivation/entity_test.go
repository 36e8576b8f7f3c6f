package motivation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tiers(pairs ...int64) []Threshold {
	out := make([]Threshold, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Threshold{
			RevenueThreshold: decimal.NewFromInt(pairs[i]),
			Reward:           decimal.NewFromInt(pairs[i+1]),
		})
	}
	return out
}

func TestTierFor(t *testing.T) {
	thresholds := tiers(50000, 1200, 100000, 2400, 200000, 4800)

	cases := []struct {
		name    string
		revenue int64
		reward  int64
		found   bool
	}{
		{"below lowest tier", 49999, 0, false},
		{"exactly lowest tier", 50000, 1200, true},
		{"between tiers", 150000, 2400, true},
		{"exactly top tier", 200000, 4800, true},
		{"above top tier", 999999, 4800, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tier, found := TierFor(thresholds, decimal.NewFromInt(c.revenue))
			assert.Equal(t, c.found, found)
			if found {
				assert.True(t, tier.Reward.Equal(decimal.NewFromInt(c.reward)))
			}
		})
	}
}

func TestTierFor_OrderIndependent(t *testing.T) {
	shuffled := tiers(200000, 4800, 50000, 1200, 100000, 2400)

	tier, found := TierFor(shuffled, decimal.NewFromInt(120000))
	assert.True(t, found)
	assert.True(t, tier.Reward.Equal(decimal.NewFromInt(2400)))
}

func TestTierFor_Empty(t *testing.T) {
	_, found := TierFor(nil, decimal.NewFromInt(100000))
	assert.False(t, found)
}

func TestCreateProgramRequest_Validate(t *testing.T) {
	valid := CreateProgramRequest{
		Name:           "Waiters Q1",
		DepartmentCode: "KITCHEN-01",
		Thresholds: []ThresholdInput{
			{RevenueThreshold: decimal.NewFromInt(50000), Reward: decimal.NewFromInt(1200)},
		},
	}
	assert.NoError(t, valid.Validate())

	missing := CreateProgramRequest{DepartmentCode: "KITCHEN-01"}
	assert.Error(t, missing.Validate())

	negative := valid
	negative.Thresholds = []ThresholdInput{
		{RevenueThreshold: decimal.NewFromInt(-1), Reward: decimal.NewFromInt(100)},
	}
	assert.Error(t, negative.Validate())

	duplicate := valid
	duplicate.Thresholds = []ThresholdInput{
		{RevenueThreshold: decimal.NewFromInt(50000), Reward: decimal.NewFromInt(1200)},
		{RevenueThreshold: decimal.NewFromInt(50000), Reward: decimal.NewFromInt(2400)},
	}
	assert.Error(t, duplicate.Validate())
}

func TestAssignProgramRequest_Validate(t *testing.T) {
	programID := "5b3a2c2e-8b1f-4f34-9c0d-2f8a91c20001"

	attach := AssignProgramRequest{
		EmployeeID: "bb1b2cf2-cf9d-4f34-b54c-11e1b7591b29",
		ProgramID:  &programID,
	}
	assert.NoError(t, attach.Validate())

	detach := AssignProgramRequest{EmployeeID: "bb1b2cf2-cf9d-4f34-b54c-11e1b7591b29"}
	assert.NoError(t, detach.Validate())

	bad := AssignProgramRequest{EmployeeID: "nope"}
	assert.Error(t, bad.Validate())
}
