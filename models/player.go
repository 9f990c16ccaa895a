package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Player represents a registered player identity
type Player struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Blocked   bool      `db:"blocked"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Wallet holds a player's balance. The balance is never set to an absolute
// value by the settlement core, only adjusted by deltas matched to ledger entries.
type Wallet struct {
	PlayerID  int64           `db:"player_id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
