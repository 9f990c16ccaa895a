package service

import (
	"context"
	"fmt"

	"roulette/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyService struct {
	uowFactory   UnitOfWorkFactory
	defaultLimit int
}

// NewHistoryService creates a new read-only history/stats service.
// defaultLimit is used when a request does not name its own limit;
// non-positive values fall back to the built-in default.
func NewHistoryService(uowFactory UnitOfWorkFactory, defaultLimit int) HistoryService {
	if defaultLimit <= 0 {
		defaultLimit = defaultHistoryLimit
	}
	return &historyService{uowFactory: uowFactory, defaultLimit: defaultLimit}
}

// GetRecentGames returns the last N committed game records for a player,
// most recent first. The limit is clamped to a sane bound.
func (s *historyService) GetRecentGames(ctx context.Context, playerID int64, limit int) ([]*models.GameRecord, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	records, err := uow.GameRecordRepository().GetRecentByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get game records: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit read transaction: %w", err)
	}

	return records, nil
}

// GetPlayerStats returns aggregated statistics for a player. A player that
// exists but never spun gets zeroed statistics; an unknown player is an error.
func (s *historyService) GetPlayerStats(ctx context.Context, playerID int64) (*models.PlayerStats, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	player, err := uow.PlayerRepository().GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, models.ErrPlayerNotFound
	}

	stats, err := uow.StatsRepository().GetByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit read transaction: %w", err)
	}

	return stats, nil
}
