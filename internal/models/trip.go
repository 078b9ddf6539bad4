package models

// MaxTripNameLength is the longest accepted trip name.
const MaxTripNameLength = 100

// Trip represents a shared context grouping members and expenses.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip (e.g., "Goa", "Ski Weekend").
	Name string

	// Description is optional free text about the trip.
	Description string

	// CreatorID is the user who created the trip. Empty when the trip was
	// created without a logged-in account.
	CreatorID string

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}
