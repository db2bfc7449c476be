package models

// Settlement represents a confirmation that a debt (or part of one) was paid
// outside the system. It is a receipt, not a payment instruction: only the
// creditor may record one, and SettledByID must always equal CreditorID.
//
// Settlements are append-only with no compensating entry type, so an
// erroneous settlement cannot be undone within this model.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// EventID is the event this settlement belongs to.
	EventID string

	// DebtorID is the user who owed the money.
	DebtorID string

	// CreditorID is the user who was owed the money.
	CreditorID string

	// Amount is the amount confirmed as paid.
	Amount float64

	// SettledByID is the user who recorded the settlement.
	SettledByID string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
