package models

// Member represents a person on a trip's roster.
//
// A member always carries its own display name and contact handle; the
// linked account may be a shadow account provisioned for someone who never
// registered. Display code must prefer Name over anything account-derived
// so shadow members render by the name they were added under.
type Member struct {
	// ID is the unique identifier for the roster entry (UUID format).
	ID string

	// TripID is the trip this member belongs to.
	TripID string

	// Name is the display name the member was added under.
	Name string

	// ContactHandle is the member's external contact identifier, typically
	// a phone-style handle. Unique within a trip.
	ContactHandle string

	// UserID is the linked account identity. Always set: either a matched
	// registered account or an auto-provisioned shadow account.
	UserID string

	// CreatedAt is the Unix timestamp when the member was added. Listing
	// preserves insertion order.
	CreatedAt int64
}
