package service

import (
	"roulette/models"

	"github.com/shopspring/decimal"
)

// ValidateWagers checks a proposed wager set for structural correctness and
// returns the total stake to debit. It has no side effects; calling it twice
// on the same input yields the same result both times.
func ValidateWagers(wagers []models.Wager) (decimal.Decimal, error) {
	if len(wagers) == 0 {
		return decimal.Zero, models.NewValidationError("at least one wager is required")
	}

	totalStake := decimal.Zero
	for i, w := range wagers {
		if !w.Kind.Known() {
			return decimal.Zero, models.NewValidationError("wager %d: unknown bet kind %q", i, w.Kind)
		}

		switch w.Kind {
		case models.WagerKindNumber:
			if w.Number == nil {
				return decimal.Zero, models.NewValidationError("wager %d: number bet requires a number", i)
			}
			if *w.Number < 0 || *w.Number > 36 {
				return decimal.Zero, models.NewValidationError("wager %d: number %d is outside 0-36", i, *w.Number)
			}
		default:
			if w.Number != nil {
				return decimal.Zero, models.NewValidationError("wager %d: %s bet must not carry a number", i, w.Kind)
			}
		}

		if !w.Stake.IsPositive() {
			return decimal.Zero, models.NewValidationError("wager %d: stake must be positive", i)
		}

		totalStake = totalStake.Add(w.Stake)
	}

	// structurally implied by the per-wager checks, re-asserted at the aggregate
	if !totalStake.IsPositive() {
		return decimal.Zero, models.NewValidationError("total stake must be positive")
	}

	return totalStake, nil
}
