package repository

import (
	"context"
	"testing"

	"roulette/models"
	"roulette/repository/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRecordRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	players := NewPlayerRepository(testDB.DB)
	records := NewGameRecordRepository(testDB.DB)

	_, err := players.Create(ctx, 300, "carol")
	require.NoError(t, err)

	t.Run("create round-trips wagers", func(t *testing.T) {
		record := &models.GameRecord{
			PlayerID: 300,
			Wagers: []models.Wager{
				testutil.CreateTestWager(models.WagerKindRed, 10),
				testutil.CreateTestNumberWager(7, 5),
			},
			Outcome:     7,
			TotalStake:  decimal.NewFromInt(15),
			TotalPayout: decimal.NewFromInt(200),
			Profit:      decimal.NewFromInt(185),
		}
		require.NoError(t, records.Create(ctx, record))
		assert.NotZero(t, record.ID)

		fetched, err := records.GetRecentByPlayer(ctx, 300, 10)
		require.NoError(t, err)
		require.Len(t, fetched, 1)

		got := fetched[0]
		assert.Equal(t, 7, got.Outcome)
		require.Len(t, got.Wagers, 2)
		assert.Equal(t, models.WagerKindRed, got.Wagers[0].Kind)
		assert.Equal(t, models.WagerKindNumber, got.Wagers[1].Kind)
		require.NotNil(t, got.Wagers[1].Number)
		assert.Equal(t, 7, *got.Wagers[1].Number)
		assert.True(t, got.TotalStake.Equal(decimal.NewFromInt(15)))
		assert.True(t, got.Profit.Equal(decimal.NewFromInt(185)))
	})

	t.Run("recent records are newest first and bounded", func(t *testing.T) {
		for outcome := 1; outcome <= 5; outcome++ {
			require.NoError(t, records.Create(ctx, testutil.CreateTestGameRecord(300, outcome)))
		}

		fetched, err := records.GetRecentByPlayer(ctx, 300, 3)
		require.NoError(t, err)
		require.Len(t, fetched, 3)
		assert.Equal(t, 5, fetched[0].Outcome)
	})

	t.Run("players see only their own history", func(t *testing.T) {
		_, err := players.Create(ctx, 301, "dave")
		require.NoError(t, err)

		fetched, err := records.GetRecentByPlayer(ctx, 301, 10)
		require.NoError(t, err)
		assert.Empty(t, fetched)
	})
}

func TestStatsRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	players := NewPlayerRepository(testDB.DB)
	stats := NewStatsRepository(testDB.DB)

	_, err := players.Create(ctx, 400, "erin")
	require.NoError(t, err)

	t.Run("unknown player gets zeroed stats", func(t *testing.T) {
		got, err := stats.GetByPlayer(ctx, 400)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.GamesPlayed)
		assert.True(t, got.TotalWagered.IsZero())
	})

	t.Run("losing spin moves only games played and wagered", func(t *testing.T) {
		require.NoError(t, stats.RecordSpin(ctx, 400, decimal.NewFromInt(10), decimal.Zero))

		got, err := stats.GetByPlayer(ctx, 400)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.GamesPlayed)
		assert.Equal(t, int64(0), got.GamesWon)
		assert.True(t, got.TotalWagered.Equal(decimal.NewFromInt(10)))
		assert.True(t, got.TotalWon.IsZero())
		assert.True(t, got.BiggestWin.IsZero())
	})

	t.Run("winning spin moves all counters", func(t *testing.T) {
		require.NoError(t, stats.RecordSpin(ctx, 400, decimal.NewFromInt(5), decimal.NewFromInt(180)))

		got, err := stats.GetByPlayer(ctx, 400)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.GamesPlayed)
		assert.Equal(t, int64(1), got.GamesWon)
		assert.True(t, got.TotalWagered.Equal(decimal.NewFromInt(15)))
		assert.True(t, got.TotalWon.Equal(decimal.NewFromInt(180)))
		assert.True(t, got.BiggestWin.Equal(decimal.NewFromInt(180)))
	})

	t.Run("biggest win only ratchets upward", func(t *testing.T) {
		require.NoError(t, stats.RecordSpin(ctx, 400, decimal.NewFromInt(5), decimal.NewFromInt(20)))

		got, err := stats.GetByPlayer(ctx, 400)
		require.NoError(t, err)
		assert.True(t, got.BiggestWin.Equal(decimal.NewFromInt(180)))
	})
}
