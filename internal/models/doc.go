// Package models defines the core domain models for the trip expense ledger.
//
// # Entities
//
//   - Trip: a shared context grouping members and expenses
//   - Member: a participant in a trip's roster, possibly without an account
//   - Expense: an immutable record of money paid by one member
//   - Debt: a directional pairwise balance within a trip
//   - User: a registered (or shadow) account
//
// # Money
//
// All monetary amounts use shopspring/decimal with two fraction digits.
// Floating point is never used for money; storage persists amounts as
// integer cents.
//
// # Relationships
//
// Models reference each other by ID strings rather than pointers to avoid
// circular references. A Member links a (trip, contact handle) pair to a
// User; shadow members link to auto-provisioned accounts that cannot log in.
package models
