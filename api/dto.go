package api

import (
	"roulette/models"

	"github.com/shopspring/decimal"
)

// SpinRequest is the wire form of a spin submission
type SpinRequest struct {
	PlayerID int64      `json:"player_id"`
	Wagers   []WagerDTO `json:"wagers"`
}

// WagerDTO is the wire form of a single wager
type WagerDTO struct {
	Kind   string          `json:"kind"`
	Number *int            `json:"number,omitempty"`
	Stake  decimal.Decimal `json:"stake"`
}

// SpinResponse is the wire form of a settled spin
type SpinResponse struct {
	Outcome int             `json:"outcome"`
	Payout  decimal.Decimal `json:"payout"`
	Balance decimal.Decimal `json:"balance"`
	Profit  decimal.Decimal `json:"profit"`
}

// GameRecordDTO is the wire form of one history entry
type GameRecordDTO struct {
	ID          string          `json:"id"`
	Wagers      []WagerDTO      `json:"wagers"`
	Outcome     int             `json:"outcome"`
	TotalStake  decimal.Decimal `json:"total_stake"`
	TotalPayout decimal.Decimal `json:"total_payout"`
	Profit      decimal.Decimal `json:"profit"`
	CreatedAt   string          `json:"created_at"`
}

// StatsResponse is the wire form of aggregated player statistics
type StatsResponse struct {
	GamesPlayed  int64           `json:"games_played"`
	GamesWon     int64           `json:"games_won"`
	TotalWagered decimal.Decimal `json:"total_wagered"`
	TotalWon     decimal.Decimal `json:"total_won"`
	BiggestWin   decimal.Decimal `json:"biggest_win"`
}

// ErrorResponse carries a stable machine-readable code plus a message
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toSpinRequest(req SpinRequest) models.SpinRequest {
	wagers := make([]models.Wager, 0, len(req.Wagers))
	for _, w := range req.Wagers {
		wagers = append(wagers, models.Wager{
			Kind:   models.WagerKind(w.Kind),
			Number: w.Number,
			Stake:  w.Stake,
		})
	}
	return models.SpinRequest{
		PlayerID: req.PlayerID,
		Wagers:   wagers,
	}
}

func toWagerDTOs(wagers []models.Wager) []WagerDTO {
	out := make([]WagerDTO, 0, len(wagers))
	for _, w := range wagers {
		out = append(out, WagerDTO{
			Kind:   string(w.Kind),
			Number: w.Number,
			Stake:  w.Stake,
		})
	}
	return out
}
