package service

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/splitease/backend/internal/calculator"
	"github.com/splitease/backend/internal/metrics"
	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

// ExpenseService manages the append-only expense log and drives the balance
// updates derived from it.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// parseAmount validates an amount string: it must parse to a positive
// decimal with at most two fraction digits.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.Sign() <= 0 || amount.Exponent() < -2 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// RecordExpense appends an expense to the trip's log and applies one
// per-head share to every non-payer member's balance toward the payer.
// The expense insert and the balance updates commit as one transaction.
func (s *ExpenseService) RecordExpense(ctx context.Context, tripID, payerID, amountStr, categoryStr, description string) (*models.Expense, error) {
	slog.Info("RecordExpense request received",
		"trip_id", tripID,
		"payer_id", payerID,
		"amount", amountStr,
		"category", categoryStr,
	)

	amount, err := parseAmount(amountStr)
	if err != nil {
		return nil, err
	}

	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		return nil, ErrInvalidCategory
	}

	if utf8.RuneCountInString(description) > models.MaxExpenseDescriptionLength {
		return nil, ErrInvalidDescription
	}

	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetUserByID(ctx, payerID); err != nil {
		return nil, err
	}

	members, err := s.store.ListMembers(ctx, tripID)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, len(members))
	payerOnRoster := false
	for i, m := range members {
		memberIDs[i] = m.UserID
		if m.UserID == payerID {
			payerOnRoster = true
		}
	}
	if !payerOnRoster {
		return nil, ErrNotAMember
	}

	expense := &models.Expense{
		TripID:      tripID,
		Amount:      amount,
		PaidByID:    payerID,
		Category:    category,
		Description: description,
	}
	deltas := calculator.SplitExpense(amount, payerID, memberIDs)

	if err := s.store.CreateExpense(ctx, expense, deltas); err != nil {
		slog.Error("RecordExpense failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	metrics.ExpensesRecorded.WithLabelValues(string(category)).Inc()
	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"trip_id", tripID,
		"share_count", len(deltas),
	)

	return expense, nil
}

// ListExpenses retrieves a trip's expenses.
func (s *ExpenseService) ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error) {
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}
	return s.store.ListExpenses(ctx, tripID)
}

// DeleteExpense removes an expense record. Debts already derived from the
// expense keep their amounts; the ledger does not reverse balance updates
// on deletion.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	slog.Info("DeleteExpense request received", "expense_id", expenseID)
	return s.store.DeleteExpense(ctx, expenseID)
}
