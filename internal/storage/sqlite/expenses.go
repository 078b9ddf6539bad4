package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

// upsertDebtSQL folds a share into a pairwise balance. The increment runs
// inside the database so concurrent expense submissions against the same
// (trip, from, to) key cannot lose updates.
const upsertDebtSQL = `
INSERT INTO debts (id, trip_id, from_user_id, to_user_id, amount_cents)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (trip_id, from_user_id, to_user_id)
DO UPDATE SET amount_cents = amount_cents + excluded.amount_cents`

// CreateExpense appends an expense and applies its debt deltas in one
// transaction. Debt rows are created lazily on first use and accumulated
// thereafter.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense, deltas []models.DebtDelta) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, amount_cents, paid_by, category, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, cents(expense.Amount), expense.PaidByID,
		string(expense.Category), expense.Description, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, delta := range deltas {
		_, err = tx.ExecContext(ctx, upsertDebtSQL,
			uuid.New().String(), expense.TripID, delta.FromUserID, delta.ToUserID, cents(delta.Amount),
		)
		if err != nil {
			return fmt.Errorf("failed to apply debt delta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	e := &models.Expense{}
	var amountCents int64
	var category string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, amount_cents, paid_by, category, description, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&e.ID, &e.TripID, &amountCents, &e.PaidByID, &category, &e.Description, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	e.Amount = fromCents(amountCents)
	e.Category = models.Category(category)

	return e, nil
}

// ListExpenses retrieves a trip's expenses, oldest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, amount_cents, paid_by, category, description, created_at
		 FROM expenses WHERE trip_id = ? ORDER BY rowid`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e := &models.Expense{}
		var amountCents int64
		var category string
		if err := rows.Scan(&e.ID, &e.TripID, &amountCents, &e.PaidByID, &category, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Amount = fromCents(amountCents)
		e.Category = models.Category(category)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense record. Debts derived from the expense
// stay as they are.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}

// HasExpenseByPayer reports whether the trip holds an expense paid by the
// given account.
func (s *SQLiteStore) HasExpenseByPayer(ctx context.Context, tripID, userID string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM expenses WHERE trip_id = ? AND paid_by = ? LIMIT 1",
		tripID, userID,
	).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check payer expenses: %w", err)
	}
	return true, nil
}
