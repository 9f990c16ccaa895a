package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerDirection represents the sign of a ledger entry
type LedgerDirection string

const (
	LedgerDirectionDebit  LedgerDirection = "debit"
	LedgerDirectionCredit LedgerDirection = "credit"
)

// LedgerReason explains why a balance-affecting transaction was written
type LedgerReason string

const (
	LedgerReasonSpinStake  LedgerReason = "spin_stake"
	LedgerReasonSpinPayout LedgerReason = "spin_payout"
)

// LedgerTransaction is one append-only entry in the balance ledger.
// Every spin writes exactly one debit and, only when payout > 0, one credit.
type LedgerTransaction struct {
	ID        uuid.UUID       `db:"id"`
	PlayerID  int64           `db:"player_id"`
	Direction LedgerDirection `db:"direction"`
	Amount    decimal.Decimal `db:"amount"`
	Reason    LedgerReason    `db:"reason"`
	CreatedAt time.Time       `db:"created_at"`
}
