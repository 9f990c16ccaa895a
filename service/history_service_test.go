package service

import (
	"context"
	"errors"
	"testing"

	"roulette/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_GetRecentGames_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	m := newSpinMocks()

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)

	// zero limit falls back to the default, oversized limits are capped
	m.recordRepo.On("GetRecentByPlayer", ctx, int64(1), defaultHistoryLimit).Return([]*models.GameRecord{}, nil).Once()
	m.recordRepo.On("GetRecentByPlayer", ctx, int64(1), maxHistoryLimit).Return([]*models.GameRecord{}, nil).Once()

	svc := NewHistoryService(m.factory, 0)

	_, err := svc.GetRecentGames(ctx, 1, 0)
	require.NoError(t, err)

	_, err = svc.GetRecentGames(ctx, 1, 5000)
	require.NoError(t, err)

	m.recordRepo.AssertExpectations(t)
}

func TestHistoryService_GetRecentGames_ConfiguredDefault(t *testing.T) {
	ctx := context.Background()
	m := newSpinMocks()

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)

	// an omitted limit uses the configured default, not the built-in one
	m.recordRepo.On("GetRecentByPlayer", ctx, int64(1), 7).Return([]*models.GameRecord{}, nil).Once()

	svc := NewHistoryService(m.factory, 7)

	_, err := svc.GetRecentGames(ctx, 1, 0)
	require.NoError(t, err)

	m.recordRepo.AssertExpectations(t)
}

func TestHistoryService_GetPlayerStats_UnknownPlayer(t *testing.T) {
	ctx := context.Background()
	m := newSpinMocks()

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.playerRepo.On("GetByID", ctx, int64(404)).Return(nil, nil)

	svc := NewHistoryService(m.factory, 0)

	stats, err := svc.GetPlayerStats(ctx, 404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrPlayerNotFound))
	assert.Nil(t, stats)
}

func TestHistoryService_GetPlayerStats(t *testing.T) {
	ctx := context.Background()
	m := newSpinMocks()

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.playerRepo.On("GetByID", ctx, int64(1)).Return(testPlayer(1), nil)
	m.statsRepo.On("GetByPlayer", ctx, int64(1)).Return(models.NewPlayerStats(1), nil)

	svc := NewHistoryService(m.factory, 0)

	stats, err := svc.GetPlayerStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.GamesPlayed)
	assert.True(t, stats.TotalWagered.IsZero())
}
