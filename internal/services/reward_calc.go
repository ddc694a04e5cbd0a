package services

import "github.com/shopspring/decimal"

// RewardParams holds the monetary constants of reward computation.
type RewardParams struct {
	// BaseRate is the currency amount paid per unit of efficiency.
	BaseRate decimal.Decimal
	// Cap is the upper bound of any single reward.
	Cap decimal.Decimal
}

// DefaultRewardParams returns the production constants: 500.00 per
// efficiency point, capped at 10000.00.
func DefaultRewardParams() RewardParams {
	return RewardParams{
		BaseRate: decimal.NewFromInt(500),
		Cap:      decimal.NewFromInt(10000),
	}
}

// Amount converts an efficiency score into a monetary reward:
// BaseRate * score, rounded half-up to 2 decimal places, capped at Cap.
// Scores are never negative, so half away from zero is half-up here.
func (p RewardParams) Amount(score float64) decimal.Decimal {
	raw := p.BaseRate.Mul(decimal.NewFromFloat(score)).Round(2)
	if raw.GreaterThan(p.Cap) {
		return p.Cap
	}
	return raw
}
