package models

import "fmt"

// SpinError is a rejection with a stable machine-readable code and a
// human-readable message. Errors with the same code compare equal under
// errors.Is so callers can match on the sentinel values below.
type SpinError struct {
	Code    string
	Message string
}

func (e *SpinError) Error() string {
	return e.Message
}

// Is matches two SpinErrors by code, ignoring the message
func (e *SpinError) Is(target error) bool {
	t, ok := target.(*SpinError)
	return ok && t.Code == e.Code
}

var (
	// ErrInvalidWagers covers every structural wager validation failure
	ErrInvalidWagers = &SpinError{Code: "invalid_wagers", Message: "invalid wagers"}

	// ErrRateLimited is returned when a spin arrives before the cooldown elapsed
	ErrRateLimited = &SpinError{Code: "rate_limited", Message: "too many spins, slow down"}

	// ErrPlayerNotFound is returned for an unknown player ID
	ErrPlayerNotFound = &SpinError{Code: "player_not_found", Message: "player not found"}

	// ErrAccountBlocked is returned when the player exists but is not allowed to play
	ErrAccountBlocked = &SpinError{Code: "account_blocked", Message: "account blocked"}

	// ErrInsufficientBalance is returned when the wallet cannot cover the total stake
	ErrInsufficientBalance = &SpinError{Code: "insufficient_balance", Message: "insufficient balance"}

	// ErrEntropyUnavailable means the secure random source failed; the spin
	// is rolled back and the player is never charged for it
	ErrEntropyUnavailable = &SpinError{Code: "entropy_unavailable", Message: "random source unavailable"}
)

// NewValidationError builds an invalid_wagers rejection with a specific message.
// The result matches ErrInvalidWagers under errors.Is.
func NewValidationError(format string, args ...any) *SpinError {
	return &SpinError{
		Code:    ErrInvalidWagers.Code,
		Message: fmt.Sprintf(format, args...),
	}
}
