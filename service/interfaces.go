package service

import (
	"context"

	"roulette/events"
	"roulette/models"

	"github.com/shopspring/decimal"
)

// PlayerRepository defines the interface for player identity data access
type PlayerRepository interface {
	// GetForUpdate retrieves a player and locks the row for the duration of
	// the surrounding transaction. Returns nil when the player does not exist.
	GetForUpdate(ctx context.Context, playerID int64) (*models.Player, error)

	// GetByID retrieves a player without locking
	GetByID(ctx context.Context, playerID int64) (*models.Player, error)

	// Create registers a new player
	Create(ctx context.Context, playerID int64, username string) (*models.Player, error)
}

// WalletRepository defines the interface for wallet balance access
type WalletRepository interface {
	// GetOrCreateForUpdate retrieves the player's wallet, creating it with a
	// zero balance on first use, and locks the row for the transaction.
	// Concurrent spins by the same player serialize on this lock.
	GetOrCreateForUpdate(ctx context.Context, playerID int64) (*models.Wallet, error)

	// AddBalance adds a positive amount to the wallet balance
	AddBalance(ctx context.Context, playerID int64, amount decimal.Decimal) error

	// DeductBalance subtracts a positive amount, failing if funds are insufficient
	DeductBalance(ctx context.Context, playerID int64, amount decimal.Decimal) error
}

// LedgerRepository defines the interface for the append-only balance ledger
type LedgerRepository interface {
	// Record appends a ledger entry and fills in its generated ID and timestamp
	Record(ctx context.Context, entry *models.LedgerTransaction) error

	// GetByPlayer returns the most recent ledger entries for a player
	GetByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.LedgerTransaction, error)
}

// GameRecordRepository defines the interface for the immutable spin audit trail
type GameRecordRepository interface {
	// Create appends a game record and fills in its generated ID and timestamp
	Create(ctx context.Context, record *models.GameRecord) error

	// GetRecentByPlayer returns the last N game records, most recent first
	GetRecentByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.GameRecord, error)
}

// StatsRepository defines the interface for aggregated player statistics
type StatsRepository interface {
	// RecordSpin folds one settled spin into the player's statistics.
	// Games played and total wagered always grow; the win counters only
	// move when payout is positive.
	RecordSpin(ctx context.Context, playerID int64, stake, payout decimal.Decimal) error

	// GetByPlayer returns the player's statistics, zeroed if they never spun
	GetByPlayer(ctx context.Context, playerID int64) (*models.PlayerStats, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork represents one atomic transactional scope over all stores.
// Every write made between Begin and Commit becomes visible together or
// not at all.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PlayerRepository() PlayerRepository
	WalletRepository() WalletRepository
	LedgerRepository() LedgerRepository
	GameRecordRepository() GameRecordRepository
	StatsRepository() StatsRepository

	// EventBus buffers events until Commit and discards them on Rollback
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates new units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// OutcomeSource produces unbiased roulette outcomes in [0, 37)
type OutcomeSource interface {
	Draw() (int, error)
}

// SpinService defines the interface for wager settlement
type SpinService interface {
	// Spin settles one spin request end to end: rate limit, validation,
	// debit, draw, payout, statistics and audit record, all in a single
	// transaction
	Spin(ctx context.Context, req models.SpinRequest) (*models.SettlementResult, error)
}

// HistoryService defines the read-only projections for players
type HistoryService interface {
	// GetRecentGames returns the last N committed game records, newest first
	GetRecentGames(ctx context.Context, playerID int64, limit int) ([]*models.GameRecord, error)

	// GetPlayerStats returns the player's aggregated statistics
	GetPlayerStats(ctx context.Context, playerID int64) (*models.PlayerStats, error)
}
