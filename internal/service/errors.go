package service

import "errors"

// Error kinds surfaced by the ledger services. Failures are reported
// synchronously and the triggering operation has no partial effect.
var (
	// ErrInvalidAmount reports a non-positive or unparsable expense amount.
	ErrInvalidAmount = errors.New("amount must be a positive value with at most two decimals")

	// ErrNotAMember reports a payer outside the trip's roster.
	ErrNotAMember = errors.New("payer is not a member of the trip")

	// ErrDuplicateMember reports a contact handle already on the roster.
	ErrDuplicateMember = errors.New("contact handle already used in this trip")

	// ErrNotAuthorized reports a settlement confirmation attempted by
	// someone other than the creditor.
	ErrNotAuthorized = errors.New("only the creditor may confirm this settlement")

	// ErrInvalidTripName reports an empty or overlong trip name.
	ErrInvalidTripName = errors.New("trip name must be non-empty and at most 100 characters")

	// ErrInvalidDescription reports an overlong expense description.
	ErrInvalidDescription = errors.New("description must be at most 255 characters")

	// ErrInvalidCategory reports a category outside the fixed enumeration.
	ErrInvalidCategory = errors.New("category must be one of Food, Travel, Stay, Other")
)
