package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameRecord is the immutable audit record of one completed spin.
// Created once inside the spin's transaction, never updated or deleted.
type GameRecord struct {
	ID          uuid.UUID       `db:"id"`
	PlayerID    int64           `db:"player_id"`
	Wagers      []Wager         `db:"wagers"`
	Outcome     int             `db:"outcome"`
	TotalStake  decimal.Decimal `db:"total_stake"`
	TotalPayout decimal.Decimal `db:"total_payout"`
	Profit      decimal.Decimal `db:"profit"`
	CreatedAt   time.Time       `db:"created_at"`
}
