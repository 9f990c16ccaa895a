package repository

import (
	"context"
	"fmt"

	"roulette/database"
	"roulette/models"
)

// LedgerRepository implements the service.LedgerRepository interface.
// The ledger is append-only; there is no update or delete path.
type LedgerRepository struct {
	q queryable
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *database.DB) *LedgerRepository {
	return &LedgerRepository{q: db.Pool}
}

// newLedgerRepositoryWithTx creates a new ledger repository with a transaction
func newLedgerRepositoryWithTx(tx queryable) *LedgerRepository {
	return &LedgerRepository{q: tx}
}

// Record appends a ledger entry and fills in its generated ID and timestamp
func (r *LedgerRepository) Record(ctx context.Context, entry *models.LedgerTransaction) error {
	query := `
		INSERT INTO ledger_transactions (player_id, direction, amount, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		entry.PlayerID,
		entry.Direction,
		entry.Amount,
		entry.Reason,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record ledger entry for player %d: %w", entry.PlayerID, err)
	}

	return nil
}

// GetByPlayer returns the most recent ledger entries for a player
func (r *LedgerRepository) GetByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.LedgerTransaction, error) {
	query := `
		SELECT id, player_id, direction, amount, reason, created_at
		FROM ledger_transactions
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries for player %d: %w", playerID, err)
	}
	defer rows.Close()

	var entries []*models.LedgerTransaction
	for rows.Next() {
		var entry models.LedgerTransaction
		err := rows.Scan(
			&entry.ID,
			&entry.PlayerID,
			&entry.Direction,
			&entry.Amount,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	return entries, nil
}
