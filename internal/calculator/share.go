// Package calculator holds the pure arithmetic of the expense ledger:
// splitting an expense into equal per-head shares and producing the debt
// increments for every non-payer member.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/splitease/backend/internal/models"
)

// PerHeadShare computes the equal share of an expense across n members.
//
// The quotient is truncated to two fraction digits; any remainder that does
// not divide evenly across the roster is dropped rather than redistributed.
// 100.00 across 3 members yields 33.33 per head, with 0.01 unaccounted for.
func PerHeadShare(amount decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromInt(int64(n))).Truncate(2)
}

// SplitExpense converts one expense event into debt increments: every member
// of the roster except the payer owes the payer one per-head share.
//
// The payer never owes themselves, so an expense across n members produces
// n-1 deltas. An empty roster produces none; callers must not divide against
// zero members, but the empty case is tolerated here rather than rejected.
func SplitExpense(amount decimal.Decimal, payerID string, memberUserIDs []string) []models.DebtDelta {
	n := len(memberUserIDs)
	if n == 0 {
		return nil
	}

	share := PerHeadShare(amount, n)
	deltas := make([]models.DebtDelta, 0, n-1)
	for _, userID := range memberUserIDs {
		if userID == payerID {
			continue
		}
		deltas = append(deltas, models.DebtDelta{
			FromUserID: userID,
			ToUserID:   payerID,
			Amount:     share,
		})
	}
	return deltas
}
