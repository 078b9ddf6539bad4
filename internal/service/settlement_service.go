package service

import (
	"context"
	"log/slog"

	"github.com/splitease/backend/internal/metrics"
	"github.com/splitease/backend/internal/storage"
)

// SettlementService zeroes pairwise balances. Settlement never deletes a
// debt row; the (trip, debtor, creditor) pairing stays visible with a zero
// amount.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given
// storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// SettleDebt sets a single debt's amount to zero, regardless of its prior
// value. Any logged-in caller may use this path.
func (s *SettlementService) SettleDebt(ctx context.Context, debtID string) error {
	slog.Info("SettleDebt request received", "debt_id", debtID)

	if err := s.store.SettleDebt(ctx, debtID); err != nil {
		slog.Error("SettleDebt failed", "debt_id", debtID, "error", err)
		return err
	}

	metrics.DebtsSettled.Inc()
	slog.Info("Debt settled", "debt_id", debtID)
	return nil
}

// SettleDebtBetween zeroes every debt from debtor to creditor within a
// trip. Only the creditor may confirm receipt; any other requester fails
// with ErrNotAuthorized and no amount changes. Pair uniqueness means at
// most one row matches.
func (s *SettlementService) SettleDebtBetween(ctx context.Context, tripID, debtorID, creditorID, requesterID string) error {
	slog.Info("SettleDebtBetween request received",
		"trip_id", tripID,
		"debtor_id", debtorID,
		"creditor_id", creditorID,
	)

	if requesterID != creditorID {
		return ErrNotAuthorized
	}

	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return err
	}

	matched, err := s.store.SettleDebtsBetween(ctx, tripID, debtorID, creditorID)
	if err != nil {
		slog.Error("SettleDebtBetween failed", "trip_id", tripID, "error", err)
		return err
	}
	if matched == 0 {
		return storage.ErrNotFound
	}

	metrics.DebtsSettled.Inc()
	slog.Info("Debts settled between pair",
		"trip_id", tripID,
		"debtor_id", debtorID,
		"creditor_id", creditorID,
		"matched", matched,
	)
	return nil
}
