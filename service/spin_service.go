package service

import (
	"context"
	"fmt"
	"time"

	"roulette/events"
	"roulette/models"

	log "github.com/sirupsen/logrus"
)

type spinService struct {
	uowFactory UnitOfWorkFactory
	outcomes   OutcomeSource
	limiter    *RateLimiter
}

// NewSpinService creates a new spin settlement service
func NewSpinService(uowFactory UnitOfWorkFactory, outcomes OutcomeSource, limiter *RateLimiter) SpinService {
	return &spinService{
		uowFactory: uowFactory,
		outcomes:   outcomes,
		limiter:    limiter,
	}
}

// Spin settles one spin request as a single all-or-nothing transaction.
// Rejections before the wallet is locked mutate nothing; any failure after
// the debit rolls the whole spin back, so the player is never charged for
// a spin that did not resolve.
func (s *spinService) Spin(ctx context.Context, req models.SpinRequest) (*models.SettlementResult, error) {
	// The cooldown slot is consumed up front, whether or not the spin
	// ultimately succeeds.
	if !s.limiter.Allow(req.PlayerID, time.Now()) {
		return nil, models.ErrRateLimited
	}

	totalStake, err := ValidateWagers(req.Wagers)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	player, err := uow.PlayerRepository().GetForUpdate(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, models.ErrPlayerNotFound
	}
	if player.Blocked {
		return nil, models.ErrAccountBlocked
	}

	// The wallet row lock serializes concurrent spins by the same player;
	// spins by different players do not block each other.
	wallet, err := uow.WalletRepository().GetOrCreateForUpdate(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if wallet.Balance.LessThan(totalStake) {
		return nil, models.ErrInsufficientBalance
	}

	if err := uow.WalletRepository().DeductBalance(ctx, req.PlayerID, totalStake); err != nil {
		return nil, fmt.Errorf("failed to debit stake: %w", err)
	}
	if err := uow.LedgerRepository().Record(ctx, &models.LedgerTransaction{
		PlayerID:  req.PlayerID,
		Direction: models.LedgerDirectionDebit,
		Amount:    totalStake,
		Reason:    models.LedgerReasonSpinStake,
	}); err != nil {
		return nil, fmt.Errorf("failed to record debit: %w", err)
	}

	balanceAfterDebit := wallet.Balance.Sub(totalStake)
	uow.EventBus().Publish(events.BalanceChangeEvent{
		PlayerID:   req.PlayerID,
		OldBalance: wallet.Balance,
		NewBalance: balanceAfterDebit,
		Delta:      totalStake.Neg(),
		Reason:     string(models.LedgerReasonSpinStake),
	})

	outcome, err := s.outcomes.Draw()
	if err != nil {
		// the deferred rollback reverts the debit
		return nil, fmt.Errorf("failed to draw outcome: %w", err)
	}

	payout := CalculatePayout(req.Wagers, outcome)

	if payout.IsPositive() {
		if err := uow.WalletRepository().AddBalance(ctx, req.PlayerID, payout); err != nil {
			return nil, fmt.Errorf("failed to credit payout: %w", err)
		}
		if err := uow.LedgerRepository().Record(ctx, &models.LedgerTransaction{
			PlayerID:  req.PlayerID,
			Direction: models.LedgerDirectionCredit,
			Amount:    payout,
			Reason:    models.LedgerReasonSpinPayout,
		}); err != nil {
			return nil, fmt.Errorf("failed to record credit: %w", err)
		}
		uow.EventBus().Publish(events.BalanceChangeEvent{
			PlayerID:   req.PlayerID,
			OldBalance: balanceAfterDebit,
			NewBalance: balanceAfterDebit.Add(payout),
			Delta:      payout,
			Reason:     string(models.LedgerReasonSpinPayout),
		})
	}

	if err := uow.StatsRepository().RecordSpin(ctx, req.PlayerID, totalStake, payout); err != nil {
		return nil, fmt.Errorf("failed to update statistics: %w", err)
	}

	newBalance := balanceAfterDebit.Add(payout)
	profit := payout.Sub(totalStake)

	record := &models.GameRecord{
		PlayerID:    req.PlayerID,
		Wagers:      req.Wagers,
		Outcome:     outcome,
		TotalStake:  totalStake,
		TotalPayout: payout,
		Profit:      profit,
	}
	if err := uow.GameRecordRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create game record: %w", err)
	}

	uow.EventBus().Publish(events.SpinSettledEvent{
		PlayerID:    req.PlayerID,
		Outcome:     outcome,
		TotalStake:  totalStake,
		TotalPayout: payout,
		Profit:      profit,
		NewBalance:  newBalance,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit spin: %w", err)
	}

	log.WithFields(log.Fields{
		"playerID": req.PlayerID,
		"outcome":  outcome,
		"stake":    totalStake,
		"payout":   payout,
	}).Debug("Spin settled")

	return &models.SettlementResult{
		Outcome:     outcome,
		TotalStake:  totalStake,
		TotalPayout: payout,
		Profit:      profit,
		NewBalance:  newBalance,
	}, nil
}
