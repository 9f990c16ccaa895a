package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"roulette/database"
	"roulette/models"
)

// GameRecordRepository implements the service.GameRecordRepository interface.
// Game records form the immutable audit trail; append-only by design of the
// schema (no update statements exist).
type GameRecordRepository struct {
	q queryable
}

// NewGameRecordRepository creates a new game record repository
func NewGameRecordRepository(db *database.DB) *GameRecordRepository {
	return &GameRecordRepository{q: db.Pool}
}

// newGameRecordRepositoryWithTx creates a new game record repository with a transaction
func newGameRecordRepositoryWithTx(tx queryable) *GameRecordRepository {
	return &GameRecordRepository{q: tx}
}

// Create appends a game record and fills in its generated ID and timestamp
func (r *GameRecordRepository) Create(ctx context.Context, record *models.GameRecord) error {
	wagersJSON, err := json.Marshal(record.Wagers)
	if err != nil {
		return fmt.Errorf("failed to marshal wagers: %w", err)
	}

	query := `
		INSERT INTO game_records (player_id, wagers, outcome, total_stake, total_payout, profit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err = r.q.QueryRow(ctx, query,
		record.PlayerID,
		wagersJSON,
		record.Outcome,
		record.TotalStake,
		record.TotalPayout,
		record.Profit,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create game record for player %d: %w", record.PlayerID, err)
	}

	return nil
}

// GetRecentByPlayer returns the last N game records for a player, most recent first
func (r *GameRecordRepository) GetRecentByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.GameRecord, error) {
	query := `
		SELECT id, player_id, wagers, outcome, total_stake, total_payout, profit, created_at
		FROM game_records
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get game records for player %d: %w", playerID, err)
	}
	defer rows.Close()

	var records []*models.GameRecord
	for rows.Next() {
		var record models.GameRecord
		var wagersJSON []byte
		err := rows.Scan(
			&record.ID,
			&record.PlayerID,
			&wagersJSON,
			&record.Outcome,
			&record.TotalStake,
			&record.TotalPayout,
			&record.Profit,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game record: %w", err)
		}
		if err := json.Unmarshal(wagersJSON, &record.Wagers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal wagers: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game records: %w", err)
	}

	return records, nil
}
