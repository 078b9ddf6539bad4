package models

import "github.com/shopspring/decimal"

// Debt represents a directional pairwise balance: how much FromUserID
// currently owes ToUserID within a trip, net of settlements.
//
// Each ordered (trip, from, to) pair is an independent accumulator; the
// ledger never nets Debt(A->B) against Debt(B->A). Rows are created lazily
// the first time a share is applied and are never deleted: a zero amount
// means "settled", preserving the pairing for display continuity.
type Debt struct {
	// ID is the unique identifier for the debt row (UUID format).
	ID string

	// TripID is the trip this balance belongs to.
	TripID string

	// FromUserID is the debtor.
	FromUserID string

	// ToUserID is the creditor.
	ToUserID string

	// Amount is the outstanding balance, always non-negative.
	Amount decimal.Decimal
}

// DebtDelta is an increment to apply to one pairwise balance. The balance
// engine emits one delta per non-payer member of an expense.
type DebtDelta struct {
	FromUserID string
	ToUserID   string
	Amount     decimal.Decimal
}
