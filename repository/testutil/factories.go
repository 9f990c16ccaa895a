package testutil

import (
	"roulette/models"

	"github.com/shopspring/decimal"
)

// CreateTestWager creates a wager of the given kind and stake
func CreateTestWager(kind models.WagerKind, stake int64) models.Wager {
	return models.Wager{
		Kind:  kind,
		Stake: decimal.NewFromInt(stake),
	}
}

// CreateTestNumberWager creates a straight-up number wager
func CreateTestNumberWager(number int, stake int64) models.Wager {
	return models.Wager{
		Kind:   models.WagerKindNumber,
		Number: &number,
		Stake:  decimal.NewFromInt(stake),
	}
}

// CreateTestGameRecord creates a losing single-wager game record
func CreateTestGameRecord(playerID int64, outcome int) *models.GameRecord {
	stake := decimal.NewFromInt(10)
	return &models.GameRecord{
		PlayerID:    playerID,
		Wagers:      []models.Wager{CreateTestWager(models.WagerKindRed, 10)},
		Outcome:     outcome,
		TotalStake:  stake,
		TotalPayout: decimal.Zero,
		Profit:      stake.Neg(),
	}
}

// CreateTestLedgerEntry creates a debit ledger entry
func CreateTestLedgerEntry(playerID int64, amount int64) *models.LedgerTransaction {
	return &models.LedgerTransaction{
		PlayerID:  playerID,
		Direction: models.LedgerDirectionDebit,
		Amount:    decimal.NewFromInt(amount),
		Reason:    models.LedgerReasonSpinStake,
	}
}
