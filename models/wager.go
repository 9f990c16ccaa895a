package models

import "github.com/shopspring/decimal"

// WagerKind identifies one of the seven supported roulette bet types
type WagerKind string

const (
	WagerKindNumber WagerKind = "number"
	WagerKindRed    WagerKind = "red"
	WagerKindBlack  WagerKind = "black"
	WagerKindOdd    WagerKind = "odd"
	WagerKindEven   WagerKind = "even"
	WagerKindLow    WagerKind = "low"
	WagerKindHigh   WagerKind = "high"
)

// Known reports whether k is one of the seven recognized bet kinds
func (k WagerKind) Known() bool {
	switch k {
	case WagerKindNumber, WagerKindRed, WagerKindBlack,
		WagerKindOdd, WagerKindEven, WagerKindLow, WagerKindHigh:
		return true
	}
	return false
}

// Wager represents a single staked proposition within a spin.
// Number is set only when Kind is WagerKindNumber. Immutable once submitted.
type Wager struct {
	Kind   WagerKind       `json:"kind"`
	Number *int            `json:"number,omitempty"`
	Stake  decimal.Decimal `json:"stake"`
}

// SpinRequest carries a player's full set of wagers for one spin.
// Wager order is irrelevant to settlement but preserved for display.
type SpinRequest struct {
	PlayerID int64
	Wagers   []Wager
}

// SettlementResult is the outcome of a fully committed spin (returned to the caller)
type SettlementResult struct {
	Outcome     int
	TotalStake  decimal.Decimal
	TotalPayout decimal.Decimal
	Profit      decimal.Decimal
	NewBalance  decimal.Decimal
}
