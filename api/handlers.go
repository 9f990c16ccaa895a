package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"roulette/models"
	"roulette/service"

	"github.com/go-chi/chi/v5"
)

// Handler serves the spin and player projection endpoints
type Handler struct {
	spins   service.SpinService
	history service.HistoryService
}

// NewHandler creates a new API handler
func NewHandler(spins service.SpinService, history service.HistoryService) *Handler {
	return &Handler{
		spins:   spins,
		history: history,
	}
}

// Spin handles POST /api/spin
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	var payload SpinRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, models.NewValidationError("malformed request body"))
		return
	}

	result, err := h.spins.Spin(r.Context(), toSpinRequest(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SpinResponse{
		Outcome: result.Outcome,
		Payout:  result.TotalPayout,
		Balance: result.NewBalance,
		Profit:  result.Profit,
	})
}

// History handles GET /api/players/{playerID}/history
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil {
		writeError(w, models.NewValidationError("invalid player id"))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, models.NewValidationError("invalid limit"))
			return
		}
	}

	records, err := h.history.GetRecentGames(r.Context(), playerID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]GameRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, GameRecordDTO{
			ID:          rec.ID.String(),
			Wagers:      toWagerDTOs(rec.Wagers),
			Outcome:     rec.Outcome,
			TotalStake:  rec.TotalStake,
			TotalPayout: rec.TotalPayout,
			Profit:      rec.Profit,
			CreatedAt:   rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// Stats handles GET /api/players/{playerID}/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil {
		writeError(w, models.NewValidationError("invalid player id"))
		return
	}

	stats, err := h.history.GetPlayerStats(r.Context(), playerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		GamesPlayed:  stats.GamesPlayed,
		GamesWon:     stats.GamesWon,
		TotalWagered: stats.TotalWagered,
		TotalWon:     stats.TotalWon,
		BiggestWin:   stats.BiggestWin,
	})
}
