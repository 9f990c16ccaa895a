package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"roulette/events"
	"roulette/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory store with the same locking discipline as the
// real database: one mutex per player wallet, taken at Begin-time load and
// held until Commit or Rollback.
type fakeStore struct {
	mu       sync.Mutex
	locks    map[int64]*sync.Mutex
	balances map[int64]decimal.Decimal
	ledger   []*models.LedgerTransaction
	records  []*models.GameRecord
	stats    map[int64]*models.PlayerStats
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		locks:    make(map[int64]*sync.Mutex),
		balances: make(map[int64]decimal.Decimal),
		stats:    make(map[int64]*models.PlayerStats),
	}
}

func (s *fakeStore) lockFor(playerID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[playerID] == nil {
		s.locks[playerID] = &sync.Mutex{}
	}
	return s.locks[playerID]
}

// fakeUnitOfWork buffers writes and applies them on Commit while holding the
// per-player lock, mirroring the transactional behavior of the repositories
type fakeUnitOfWork struct {
	store   *fakeStore
	held    *sync.Mutex
	pending []func()
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }

func (u *fakeUnitOfWork) Commit() error {
	u.store.mu.Lock()
	for _, apply := range u.pending {
		apply()
	}
	u.store.mu.Unlock()
	u.release()
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.pending = nil
	u.release()
	return nil
}

func (u *fakeUnitOfWork) release() {
	if u.held != nil {
		u.held.Unlock()
		u.held = nil
	}
}

func (u *fakeUnitOfWork) PlayerRepository() PlayerRepository         { return &fakePlayerRepo{u} }
func (u *fakeUnitOfWork) WalletRepository() WalletRepository         { return &fakeWalletRepo{u} }
func (u *fakeUnitOfWork) LedgerRepository() LedgerRepository         { return &fakeLedgerRepo{u} }
func (u *fakeUnitOfWork) GameRecordRepository() GameRecordRepository { return &fakeRecordRepo{u} }
func (u *fakeUnitOfWork) StatsRepository() StatsRepository           { return &fakeStatsRepo{u} }
func (u *fakeUnitOfWork) EventBus() EventPublisher                   { return nopPublisher{} }

type nopPublisher struct{}

func (nopPublisher) Publish(events.Event) {}

type fakePlayerRepo struct{ u *fakeUnitOfWork }

func (r *fakePlayerRepo) GetForUpdate(ctx context.Context, playerID int64) (*models.Player, error) {
	return &models.Player{ID: playerID, Username: "fake"}, nil
}

func (r *fakePlayerRepo) GetByID(ctx context.Context, playerID int64) (*models.Player, error) {
	return &models.Player{ID: playerID, Username: "fake"}, nil
}

func (r *fakePlayerRepo) Create(ctx context.Context, playerID int64, username string) (*models.Player, error) {
	return &models.Player{ID: playerID, Username: username}, nil
}

type fakeWalletRepo struct{ u *fakeUnitOfWork }

func (r *fakeWalletRepo) GetOrCreateForUpdate(ctx context.Context, playerID int64) (*models.Wallet, error) {
	// acquire the per-player lock, exactly like SELECT ... FOR UPDATE
	lock := r.u.store.lockFor(playerID)
	lock.Lock()
	r.u.held = lock

	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	balance, ok := r.u.store.balances[playerID]
	if !ok {
		balance = decimal.Zero
		r.u.store.balances[playerID] = balance
	}
	return &models.Wallet{PlayerID: playerID, Balance: balance}, nil
}

func (r *fakeWalletRepo) AddBalance(ctx context.Context, playerID int64, amount decimal.Decimal) error {
	r.u.pending = append(r.u.pending, func() {
		r.u.store.balances[playerID] = r.u.store.balances[playerID].Add(amount)
	})
	return nil
}

func (r *fakeWalletRepo) DeductBalance(ctx context.Context, playerID int64, amount decimal.Decimal) error {
	r.u.pending = append(r.u.pending, func() {
		r.u.store.balances[playerID] = r.u.store.balances[playerID].Sub(amount)
	})
	return nil
}

type fakeLedgerRepo struct{ u *fakeUnitOfWork }

func (r *fakeLedgerRepo) Record(ctx context.Context, entry *models.LedgerTransaction) error {
	r.u.pending = append(r.u.pending, func() {
		r.u.store.ledger = append(r.u.store.ledger, entry)
	})
	return nil
}

func (r *fakeLedgerRepo) GetByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.LedgerTransaction, error) {
	return nil, nil
}

type fakeRecordRepo struct{ u *fakeUnitOfWork }

func (r *fakeRecordRepo) Create(ctx context.Context, record *models.GameRecord) error {
	r.u.pending = append(r.u.pending, func() {
		r.u.store.records = append(r.u.store.records, record)
	})
	return nil
}

func (r *fakeRecordRepo) GetRecentByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.GameRecord, error) {
	return nil, nil
}

type fakeStatsRepo struct{ u *fakeUnitOfWork }

func (r *fakeStatsRepo) RecordSpin(ctx context.Context, playerID int64, stake, payout decimal.Decimal) error {
	r.u.pending = append(r.u.pending, func() {
		stats := r.u.store.stats[playerID]
		if stats == nil {
			stats = models.NewPlayerStats(playerID)
			r.u.store.stats[playerID] = stats
		}
		stats.GamesPlayed++
		stats.TotalWagered = stats.TotalWagered.Add(stake)
		if payout.IsPositive() {
			stats.GamesWon++
			stats.TotalWon = stats.TotalWon.Add(payout)
			if payout.GreaterThan(stats.BiggestWin) {
				stats.BiggestWin = payout
			}
		}
	})
	return nil
}

func (r *fakeStatsRepo) GetByPlayer(ctx context.Context, playerID int64) (*models.PlayerStats, error) {
	return models.NewPlayerStats(playerID), nil
}

type fakeUoWFactory struct{ store *fakeStore }

func (f *fakeUoWFactory) Create() UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// fixedOutcome always lands on the same pocket
type fixedOutcome int

func (o fixedOutcome) Draw() (int, error) { return int(o), nil }

// TestSpinService_ConcurrentSpinsNeverOverdraw runs N concurrent losing spins
// by one player whose balance covers only M of them, and checks that exactly
// M settle, the rest are rejected for insufficient funds, and the final
// balance accounts for exactly M stakes.
func TestSpinService_ConcurrentSpinsNeverOverdraw(t *testing.T) {
	const (
		n        = 20
		m        = 7
		stake    = 10
		playerID = int64(99)
	)

	store := newFakeStore()
	store.balances[playerID] = decimal.NewFromInt(m * stake)

	// no cooldown so all spins race on the wallet, outcome 0 so every spin loses
	svc := NewSpinService(&fakeUoWFactory{store: store}, fixedOutcome(0), NewRateLimiter(0))

	req := models.SpinRequest{
		PlayerID: playerID,
		Wagers:   []models.Wager{{Kind: models.WagerKindRed, Stake: decimal.NewFromInt(stake)}},
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Spin(context.Background(), req)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	settled, rejected := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			settled++
		case errors.Is(err, models.ErrInsufficientBalance):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, m, settled)
	assert.Equal(t, n-m, rejected)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.True(t, store.balances[playerID].IsZero(),
		"final balance %s, want 0", store.balances[playerID])
	require.Len(t, store.ledger, m, "one debit per settled spin, no credits on losses")
	assert.Len(t, store.records, m)
	require.NotNil(t, store.stats[playerID])
	assert.Equal(t, int64(m), store.stats[playerID].GamesPlayed)
	assert.Equal(t, int64(0), store.stats[playerID].GamesWon)
}
