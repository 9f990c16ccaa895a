package models

import "github.com/shopspring/decimal"

// PlayerStats represents aggregated per-player betting statistics.
// GamesPlayed and TotalWagered grow on every spin; the win counters
// only move when a spin pays out.
type PlayerStats struct {
	PlayerID     int64           `db:"player_id"`
	GamesPlayed  int64           `db:"games_played"`
	GamesWon     int64           `db:"games_won"`
	TotalWagered decimal.Decimal `db:"total_wagered"`
	TotalWon     decimal.Decimal `db:"total_won"`
	BiggestWin   decimal.Decimal `db:"biggest_win"`
}

// NewPlayerStats returns zeroed statistics for a player that has not spun yet
func NewPlayerStats(playerID int64) *PlayerStats {
	return &PlayerStats{
		PlayerID:     playerID,
		TotalWagered: decimal.Zero,
		TotalWon:     decimal.Zero,
		BiggestWin:   decimal.Zero,
	}
}
