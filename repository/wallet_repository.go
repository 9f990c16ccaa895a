package repository

import (
	"context"
	"fmt"

	"roulette/database"
	"roulette/models"

	"github.com/shopspring/decimal"
)

// WalletRepository implements the service.WalletRepository interface
type WalletRepository struct {
	q queryable
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *database.DB) *WalletRepository {
	return &WalletRepository{q: db.Pool}
}

// newWalletRepositoryWithTx creates a new wallet repository with a transaction
func newWalletRepositoryWithTx(tx queryable) *WalletRepository {
	return &WalletRepository{q: tx}
}

// GetOrCreateForUpdate retrieves the player's wallet, creating it with a zero
// balance on first use, and locks the row until the surrounding transaction
// ends. The row lock is what serializes concurrent spins by the same player.
func (r *WalletRepository) GetOrCreateForUpdate(ctx context.Context, playerID int64) (*models.Wallet, error) {
	insert := `
		INSERT INTO wallets (player_id)
		VALUES ($1)
		ON CONFLICT (player_id) DO NOTHING
	`
	if _, err := r.q.Exec(ctx, insert, playerID); err != nil {
		return nil, fmt.Errorf("failed to ensure wallet for player %d: %w", playerID, err)
	}

	query := `
		SELECT player_id, balance, created_at, updated_at
		FROM wallets
		WHERE player_id = $1
		FOR UPDATE
	`

	var wallet models.Wallet
	err := r.q.QueryRow(ctx, query, playerID).Scan(
		&wallet.PlayerID,
		&wallet.Balance,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet for player %d: %w", playerID, err)
	}

	return &wallet, nil
}

// AddBalance adds a positive amount to the wallet balance
func (r *WalletRepository) AddBalance(ctx context.Context, playerID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE wallets
		SET balance = balance + $1, updated_at = NOW()
		WHERE player_id = $2
	`

	result, err := r.q.Exec(ctx, query, amount, playerID)
	if err != nil {
		return fmt.Errorf("failed to add balance for player %d: %w", playerID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("wallet for player %d not found", playerID)
	}

	return nil
}

// DeductBalance subtracts a positive amount from the wallet balance,
// failing if the balance cannot cover it
func (r *WalletRepository) DeductBalance(ctx context.Context, playerID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE wallets
		SET balance = balance - $1, updated_at = NOW()
		WHERE player_id = $2
		  AND balance >= $1
	`

	result, err := r.q.Exec(ctx, query, amount, playerID)
	if err != nil {
		return fmt.Errorf("failed to deduct balance for player %d: %w", playerID, err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrInsufficientBalance
	}

	return nil
}
