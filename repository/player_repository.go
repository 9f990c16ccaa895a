package repository

import (
	"context"
	"fmt"

	"roulette/database"
	"roulette/models"

	"github.com/jackc/pgx/v5"
)

// PlayerRepository implements the service.PlayerRepository interface
type PlayerRepository struct {
	q queryable
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{q: db.Pool}
}

// newPlayerRepositoryWithTx creates a new player repository with a transaction
func newPlayerRepositoryWithTx(tx queryable) *PlayerRepository {
	return &PlayerRepository{q: tx}
}

// GetForUpdate retrieves a player by ID and locks the row for the duration
// of the surrounding transaction. Returns nil when the player does not exist.
func (r *PlayerRepository) GetForUpdate(ctx context.Context, playerID int64) (*models.Player, error) {
	query := `
		SELECT id, username, blocked, created_at, updated_at
		FROM players
		WHERE id = $1
		FOR UPDATE
	`

	var player models.Player
	err := r.q.QueryRow(ctx, query, playerID).Scan(
		&player.ID,
		&player.Username,
		&player.Blocked,
		&player.CreatedAt,
		&player.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d for update: %w", playerID, err)
	}

	return &player, nil
}

// GetByID retrieves a player by ID without locking
func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (*models.Player, error) {
	query := `
		SELECT id, username, blocked, created_at, updated_at
		FROM players
		WHERE id = $1
	`

	var player models.Player
	err := r.q.QueryRow(ctx, query, playerID).Scan(
		&player.ID,
		&player.Username,
		&player.Blocked,
		&player.CreatedAt,
		&player.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", playerID, err)
	}

	return &player, nil
}

// Create registers a new player
func (r *PlayerRepository) Create(ctx context.Context, playerID int64, username string) (*models.Player, error) {
	query := `
		INSERT INTO players (id, username)
		VALUES ($1, $2)
		RETURNING id, username, blocked, created_at, updated_at
	`

	var player models.Player
	err := r.q.QueryRow(ctx, query, playerID, username).Scan(
		&player.ID,
		&player.Username,
		&player.Blocked,
		&player.CreatedAt,
		&player.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create player %d: %w", playerID, err)
	}

	return &player, nil
}
