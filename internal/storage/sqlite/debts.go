package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

const debtColumns = "id, trip_id, from_user_id, to_user_id, amount_cents"

func scanDebt(row interface{ Scan(...any) error }) (*models.Debt, error) {
	d := &models.Debt{}
	var amountCents int64
	if err := row.Scan(&d.ID, &d.TripID, &d.FromUserID, &d.ToUserID, &amountCents); err != nil {
		return nil, err
	}
	d.Amount = fromCents(amountCents)
	return d, nil
}

// GetDebt retrieves a debt row by ID.
func (s *SQLiteStore) GetDebt(ctx context.Context, debtID string) (*models.Debt, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE id = ?", debtID)
	d, err := scanDebt(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("debt %s: %w", debtID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return d, nil
}

func (s *SQLiteStore) listDebts(ctx context.Context, where string, args ...any) ([]*models.Debt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE "+where+" AND amount_cents != 0 ORDER BY rowid",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []*models.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}

	return debts, nil
}

// ListDebtsByTrip retrieves every non-zero debt for a trip.
func (s *SQLiteStore) ListDebtsByTrip(ctx context.Context, tripID string) ([]*models.Debt, error) {
	return s.listDebts(ctx, "trip_id = ?", tripID)
}

// ListDebtsOwedBy retrieves every non-zero debt where the user is the debtor.
func (s *SQLiteStore) ListDebtsOwedBy(ctx context.Context, userID string) ([]*models.Debt, error) {
	return s.listDebts(ctx, "from_user_id = ?", userID)
}

// ListDebtsOwedTo retrieves every non-zero debt where the user is the creditor.
func (s *SQLiteStore) ListDebtsOwedTo(ctx context.Context, userID string) ([]*models.Debt, error) {
	return s.listDebts(ctx, "to_user_id = ?", userID)
}

// SettleDebt sets a debt's amount to zero. The row is kept so the pairing
// remains visible after settlement.
func (s *SQLiteStore) SettleDebt(ctx context.Context, debtID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE debts SET amount_cents = 0 WHERE id = ?", debtID)
	if err != nil {
		return fmt.Errorf("failed to settle debt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read settle result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("debt %s: %w", debtID, storage.ErrNotFound)
	}
	return nil
}

// SettleDebtsBetween zeroes every debt matching (trip, debtor, creditor).
// The uniqueness constraint means at most one row matches, but all matches
// are zeroed regardless.
func (s *SQLiteStore) SettleDebtsBetween(ctx context.Context, tripID, fromUserID, toUserID string) (int, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE debts SET amount_cents = 0 WHERE trip_id = ? AND from_user_id = ? AND to_user_id = ?",
		tripID, fromUserID, toUserID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to settle debts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read settle result: %w", err)
	}
	return int(n), nil
}
