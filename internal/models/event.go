package models

// Event statuses. Settled is a derived display state: it means the latest
// reconciliation produced no outstanding instructions. Nothing blocks new
// transactions on a settled event; the next append flips it back to active.
const (
	EventStatusActive  = "active"
	EventStatusSettled = "settled"
)

// Event represents a bounded group expense-sharing context: a fixed member
// roster, a currency, and the transaction/settlement history scoped to it.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string

	// Name is the display name of the event (e.g., "Goa Trip", "Flat 4B").
	Name string

	// CreatorID is the user who created the event. The creator is always
	// the first member.
	CreatorID string

	// Currency is the ISO 4217 code all amounts in this event share.
	// No conversion happens anywhere in the system.
	Currency string

	// MemberIDs is the roster of user IDs participating in this event.
	// Members are only ever added, never removed.
	MemberIDs []string

	// CreatedAt is the Unix timestamp when the event was created.
	CreatedAt int64
}

// IsMember reports whether the given user belongs to the event roster.
func (e *Event) IsMember(userID string) bool {
	for _, id := range e.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
