package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category classifies an expense.
type Category string

// The fixed set of expense categories.
const (
	CategoryFood   Category = "Food"
	CategoryTravel Category = "Travel"
	CategoryStay   Category = "Stay"
	CategoryOther  Category = "Other"
)

// MaxExpenseDescriptionLength is the longest accepted expense description.
const MaxExpenseDescriptionLength = 255

// ParseCategory validates a category string against the fixed enumeration.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFood, CategoryTravel, CategoryStay, CategoryOther:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Expense represents a single payment made by one member on behalf of the
// trip. Expenses are immutable once recorded; the only mutation is deletion,
// which does not touch any debts derived from the expense.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the owning trip.
	TripID string

	// Amount is the full amount paid, always non-negative with two
	// fraction digits.
	Amount decimal.Decimal

	// PaidByID is the account identity of the paying member.
	PaidByID string

	// Category is one of the fixed expense categories.
	Category Category

	// Description is free text, at most MaxExpenseDescriptionLength runes.
	Description string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
