// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splitease/backend/internal/models"
)

// ErrNotFound is returned when an identity does not resolve to a stored
// entity. Implementations wrap it with the entity kind and ID.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a uniqueness constraint is violated, such as
// two roster entries sharing a contact handle within one trip.
var ErrDuplicate = errors.New("already exists")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer, and lets tests substitute fakes.
type Store interface {
	TripStore
	MemberStore
	ExpenseStore
	DebtStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}

// TripStore persists trips.
type TripStore interface {
	// CreateTrip persists a new trip. ID and CreatedAt are populated by the
	// store when unset.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by ID. Returns ErrNotFound when absent.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTripsForUser retrieves every trip whose roster links to the given
	// account identity, oldest first.
	ListTripsForUser(ctx context.Context, userID string) ([]*models.Trip, error)

	// DeleteTrip removes a trip with its roster, expenses and debts.
	// Returns ErrNotFound when absent.
	DeleteTrip(ctx context.Context, tripID string) error
}

// MemberStore persists trip rosters.
type MemberStore interface {
	// CreateMember adds a roster entry. Returns ErrDuplicate when the
	// (trip, contact handle) pair is already taken.
	CreateMember(ctx context.Context, member *models.Member) error

	// ListMembers retrieves a trip's roster in insertion order.
	ListMembers(ctx context.Context, tripID string) ([]*models.Member, error)
}

// ExpenseStore persists the append-only expense log.
type ExpenseStore interface {
	// CreateExpense appends an expense and applies the given debt deltas in
	// a single transaction: either the expense and every balance update are
	// visible, or none are.
	CreateExpense(ctx context.Context, expense *models.Expense, deltas []models.DebtDelta) error

	// GetExpense retrieves an expense by ID. Returns ErrNotFound when
	// absent.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses retrieves a trip's expenses, oldest first.
	ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error)

	// DeleteExpense removes an expense record. Debts derived from it keep
	// their amounts. Returns ErrNotFound when absent.
	DeleteExpense(ctx context.Context, expenseID string) error

	// HasExpenseByPayer reports whether the trip holds at least one expense
	// paid by the given account.
	HasExpenseByPayer(ctx context.Context, tripID, userID string) (bool, error)
}

// DebtStore persists pairwise balances.
type DebtStore interface {
	// GetDebt retrieves a debt row by ID. Returns ErrNotFound when absent.
	GetDebt(ctx context.Context, debtID string) (*models.Debt, error)

	// ListDebtsByTrip retrieves every non-zero debt for a trip.
	ListDebtsByTrip(ctx context.Context, tripID string) ([]*models.Debt, error)

	// ListDebtsOwedBy retrieves every non-zero debt across all trips where
	// the given account is the debtor.
	ListDebtsOwedBy(ctx context.Context, userID string) ([]*models.Debt, error)

	// ListDebtsOwedTo retrieves every non-zero debt across all trips where
	// the given account is the creditor.
	ListDebtsOwedTo(ctx context.Context, userID string) ([]*models.Debt, error)

	// SettleDebt sets a debt's amount to zero, keeping the row. Returns
	// ErrNotFound when absent.
	SettleDebt(ctx context.Context, debtID string) error

	// SettleDebtsBetween zeroes every debt matching (trip, debtor,
	// creditor) and returns how many rows matched.
	SettleDebtsBetween(ctx context.Context, tripID, fromUserID, toUserID string) (int, error)
}

// UserStore persists accounts.
type UserStore interface {
	// CreateUser inserts a new account. Returns ErrDuplicate when the
	// username is taken (case-insensitively).
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID. Returns ErrNotFound when absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByUsername retrieves a user by username, matching
	// case-insensitively. Returns ErrNotFound when absent.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users keyed by ID. Missing IDs are
	// omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)
}
