package repository

import (
	"context"
	"fmt"

	"roulette/database"
	"roulette/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// StatsRepository implements the service.StatsRepository interface
type StatsRepository struct {
	q queryable
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{q: db.Pool}
}

// newStatsRepositoryWithTx creates a new stats repository with a transaction
func newStatsRepositoryWithTx(tx queryable) *StatsRepository {
	return &StatsRepository{q: tx}
}

// RecordSpin folds one settled spin into the player's statistics in a single
// upsert. Games played and total wagered always grow; games won, total won
// and biggest win only move when the payout is positive.
func (r *StatsRepository) RecordSpin(ctx context.Context, playerID int64, stake, payout decimal.Decimal) error {
	won := payout.IsPositive()
	wonIncrement := int64(0)
	wonAmount := decimal.Zero
	if won {
		wonIncrement = 1
		wonAmount = payout
	}

	query := `
		INSERT INTO player_stats (player_id, games_played, games_won, total_wagered, total_won, biggest_win)
		VALUES ($1, 1, $2, $3, $4, $4)
		ON CONFLICT (player_id) DO UPDATE SET
			games_played = player_stats.games_played + 1,
			games_won = player_stats.games_won + $2,
			total_wagered = player_stats.total_wagered + $3,
			total_won = player_stats.total_won + $4,
			biggest_win = GREATEST(player_stats.biggest_win, $4)
	`

	if _, err := r.q.Exec(ctx, query, playerID, wonIncrement, stake, wonAmount); err != nil {
		return fmt.Errorf("failed to record spin statistics for player %d: %w", playerID, err)
	}

	return nil
}

// GetByPlayer returns the player's statistics, zeroed if they never spun
func (r *StatsRepository) GetByPlayer(ctx context.Context, playerID int64) (*models.PlayerStats, error) {
	query := `
		SELECT player_id, games_played, games_won, total_wagered, total_won, biggest_win
		FROM player_stats
		WHERE player_id = $1
	`

	var stats models.PlayerStats
	err := r.q.QueryRow(ctx, query, playerID).Scan(
		&stats.PlayerID,
		&stats.GamesPlayed,
		&stats.GamesWon,
		&stats.TotalWagered,
		&stats.TotalWon,
		&stats.BiggestWin,
	)

	if err == pgx.ErrNoRows {
		return models.NewPlayerStats(playerID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics for player %d: %w", playerID, err)
	}

	return &stats, nil
}
