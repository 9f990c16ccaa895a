package service

import (
	"roulette/models"

	"github.com/shopspring/decimal"
)

// Payout multiples. A winning payout already includes the returned stake:
// a straight-up number pays 35 to 1 plus the stake back, even-money bets
// pay 1 to 1 plus the stake back.
var (
	numberPayoutMultiple    = decimal.NewFromInt(36)
	evenMoneyPayoutMultiple = decimal.NewFromInt(2)
)

// redNumbers are the red pockets of a European wheel; 1-36 outside this
// set are black. Zero is neither.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// IsRed reports whether an outcome is a red pocket
func IsRed(outcome int) bool {
	return redNumbers[outcome]
}

// CalculatePayout computes the total payout for a wager set against a drawn
// outcome using exact decimal arithmetic. Zero loses every even-money,
// parity and range bet. Wagers with non-positive stakes contribute nothing;
// they should never reach this point if validation ran first.
func CalculatePayout(wagers []models.Wager, outcome int) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wagers {
		if !w.Stake.IsPositive() {
			continue
		}

		var won bool
		multiple := evenMoneyPayoutMultiple

		switch w.Kind {
		case models.WagerKindNumber:
			won = w.Number != nil && *w.Number == outcome
			multiple = numberPayoutMultiple
		case models.WagerKindRed:
			won = IsRed(outcome)
		case models.WagerKindBlack:
			won = outcome >= 1 && outcome <= 36 && !IsRed(outcome)
		case models.WagerKindOdd:
			won = outcome >= 1 && outcome%2 == 1
		case models.WagerKindEven:
			won = outcome >= 1 && outcome%2 == 0
		case models.WagerKindLow:
			won = outcome >= 1 && outcome <= 18
		case models.WagerKindHigh:
			won = outcome >= 19 && outcome <= 36
		}

		if won {
			total = total.Add(w.Stake.Mul(multiple))
		}
	}
	return total
}
