package service

import (
	"testing"

	"roulette/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculatePayout_NumberBet(t *testing.T) {
	stake := decimal.NewFromInt(5)

	for target := 0; target <= 36; target++ {
		wagers := []models.Wager{{Kind: models.WagerKindNumber, Number: intPtr(target), Stake: stake}}

		for outcome := 0; outcome <= 36; outcome++ {
			payout := CalculatePayout(wagers, outcome)
			if outcome == target {
				assert.True(t, payout.Equal(decimal.NewFromInt(180)),
					"number %d on outcome %d should pay 36x", target, outcome)
			} else {
				assert.True(t, payout.IsZero(),
					"number %d on outcome %d should pay nothing", target, outcome)
			}
		}
	}
}

func TestCalculatePayout_RedBlack(t *testing.T) {
	stake := decimal.NewFromInt(10)
	red := []models.Wager{{Kind: models.WagerKindRed, Stake: stake}}
	black := []models.Wager{{Kind: models.WagerKindBlack, Stake: stake}}
	double := stake.Mul(decimal.NewFromInt(2))

	for outcome := 1; outcome <= 36; outcome++ {
		redPayout := CalculatePayout(red, outcome)
		blackPayout := CalculatePayout(black, outcome)

		if IsRed(outcome) {
			assert.True(t, redPayout.Equal(double), "outcome %d is red", outcome)
			assert.True(t, blackPayout.IsZero(), "outcome %d is red", outcome)
		} else {
			assert.True(t, redPayout.IsZero(), "outcome %d is black", outcome)
			assert.True(t, blackPayout.Equal(double), "outcome %d is black", outcome)
		}
	}
}

func TestCalculatePayout_ZeroLosesEvenMoneyBets(t *testing.T) {
	stake := decimal.NewFromInt(10)
	kinds := []models.WagerKind{
		models.WagerKindRed, models.WagerKindBlack,
		models.WagerKindOdd, models.WagerKindEven,
		models.WagerKindLow, models.WagerKindHigh,
	}

	for _, kind := range kinds {
		payout := CalculatePayout([]models.Wager{{Kind: kind, Stake: stake}}, 0)
		assert.True(t, payout.IsZero(), "zero must lose %s bets", kind)
	}
}

func TestCalculatePayout_ParityAndRange(t *testing.T) {
	stake := decimal.NewFromInt(4)
	double := stake.Mul(decimal.NewFromInt(2))

	tests := []struct {
		kind    models.WagerKind
		winners func(outcome int) bool
	}{
		{models.WagerKindOdd, func(o int) bool { return o >= 1 && o%2 == 1 }},
		{models.WagerKindEven, func(o int) bool { return o >= 1 && o%2 == 0 }},
		{models.WagerKindLow, func(o int) bool { return o >= 1 && o <= 18 }},
		{models.WagerKindHigh, func(o int) bool { return o >= 19 && o <= 36 }},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			wagers := []models.Wager{{Kind: tt.kind, Stake: stake}}
			for outcome := 0; outcome <= 36; outcome++ {
				payout := CalculatePayout(wagers, outcome)
				if tt.winners(outcome) {
					assert.True(t, payout.Equal(double), "outcome %d should win %s", outcome, tt.kind)
				} else {
					assert.True(t, payout.IsZero(), "outcome %d should lose %s", outcome, tt.kind)
				}
			}
		})
	}
}

func TestCalculatePayout_MultipleWagersSum(t *testing.T) {
	// outcome 7 is red, odd, low
	wagers := []models.Wager{
		{Kind: models.WagerKindNumber, Number: intPtr(7), Stake: decimal.NewFromInt(5)}, // 180
		{Kind: models.WagerKindRed, Stake: decimal.NewFromInt(10)},                      // 20
		{Kind: models.WagerKindHigh, Stake: decimal.NewFromInt(3)},                      // 0
		{Kind: models.WagerKindOdd, Stake: decimal.RequireFromString("1.25")},           // 2.50
	}

	payout := CalculatePayout(wagers, 7)
	assert.True(t, payout.Equal(decimal.RequireFromString("202.50")))
}

func TestCalculatePayout_SkipsNonPositiveStakes(t *testing.T) {
	wagers := []models.Wager{
		{Kind: models.WagerKindRed, Stake: decimal.Zero},
		{Kind: models.WagerKindRed, Stake: decimal.NewFromInt(-10)},
	}

	payout := CalculatePayout(wagers, 1)
	assert.True(t, payout.IsZero())
}

func TestCalculatePayout_ExactDecimalArithmetic(t *testing.T) {
	// a stake that would drift under binary floating point
	wagers := []models.Wager{{Kind: models.WagerKindRed, Stake: decimal.RequireFromString("0.1")}}

	total := decimal.Zero
	for i := 0; i < 1000; i++ {
		total = total.Add(CalculatePayout(wagers, 1))
	}
	assert.True(t, total.Equal(decimal.RequireFromString("200")))
}

func TestRedNumbers_MatchWheelLayout(t *testing.T) {
	expected := []int{1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36}

	count := 0
	for outcome := 0; outcome <= 36; outcome++ {
		if IsRed(outcome) {
			count++
		}
	}
	assert.Equal(t, 18, count)

	for _, n := range expected {
		assert.True(t, IsRed(n), "%d must be red", n)
	}
	assert.False(t, IsRed(0))
}
