package service

import (
	"context"

	"roulette/events"
	"roulette/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPlayerRepository is a mock implementation of PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetForUpdate(ctx context.Context, playerID int64) (*models.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, playerID int64) (*models.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) Create(ctx context.Context, playerID int64, username string) (*models.Player, error) {
	args := m.Called(ctx, playerID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

// MockWalletRepository is a mock implementation of WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetOrCreateForUpdate(ctx context.Context, playerID int64) (*models.Wallet, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) AddBalance(ctx context.Context, playerID int64, amount decimal.Decimal) error {
	args := m.Called(ctx, playerID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) DeductBalance(ctx context.Context, playerID int64, amount decimal.Decimal) error {
	args := m.Called(ctx, playerID, amount)
	return args.Error(0)
}

// MockLedgerRepository is a mock implementation of LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Record(ctx context.Context, entry *models.LedgerTransaction) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.LedgerTransaction, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerTransaction), args.Error(1)
}

// MockGameRecordRepository is a mock implementation of GameRecordRepository
type MockGameRecordRepository struct {
	mock.Mock
}

func (m *MockGameRecordRepository) Create(ctx context.Context, record *models.GameRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockGameRecordRepository) GetRecentByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.GameRecord, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GameRecord), args.Error(1)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordSpin(ctx context.Context, playerID int64, stake, payout decimal.Decimal) error {
	args := m.Called(ctx, playerID, stake, payout)
	return args.Error(0)
}

func (m *MockStatsRepository) GetByPlayer(ctx context.Context, playerID int64) (*models.PlayerStats, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerStats), args.Error(1)
}

// MockOutcomeSource is a mock implementation of OutcomeSource
type MockOutcomeSource struct {
	mock.Mock
}

func (m *MockOutcomeSource) Draw() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Repositories are
// injected with SetRepositories rather than mocked call-by-call.
type MockUnitOfWork struct {
	mock.Mock
	playerRepo     PlayerRepository
	walletRepo     WalletRepository
	ledgerRepo     LedgerRepository
	gameRecordRepo GameRecordRepository
	statsRepo      StatsRepository
	eventBus       EventPublisher
}

// SetRepositories wires the repositories this unit of work hands out
func (m *MockUnitOfWork) SetRepositories(
	playerRepo PlayerRepository,
	walletRepo WalletRepository,
	ledgerRepo LedgerRepository,
	gameRecordRepo GameRecordRepository,
	statsRepo StatsRepository,
) {
	m.playerRepo = playerRepo
	m.walletRepo = walletRepo
	m.ledgerRepo = ledgerRepo
	m.gameRecordRepo = gameRecordRepo
	m.statsRepo = statsRepo
	m.eventBus = &capturePublisher{}
}

// PublishedEvents returns the events the service published through this
// unit of work, in publish order.
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	return m.eventBus.(*capturePublisher).published
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) PlayerRepository() PlayerRepository         { return m.playerRepo }
func (m *MockUnitOfWork) WalletRepository() WalletRepository         { return m.walletRepo }
func (m *MockUnitOfWork) LedgerRepository() LedgerRepository         { return m.ledgerRepo }
func (m *MockUnitOfWork) GameRecordRepository() GameRecordRepository { return m.gameRecordRepo }
func (m *MockUnitOfWork) StatsRepository() StatsRepository           { return m.statsRepo }
func (m *MockUnitOfWork) EventBus() EventPublisher                   { return m.eventBus }

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}

// capturePublisher records published events for assertion
type capturePublisher struct {
	published []events.Event
}

func (p *capturePublisher) Publish(event events.Event) {
	p.published = append(p.published, event)
}
