package models

// Split is the portion of one transaction's total attributed as owed by one
// member. A split naming the payer is legal but contributes zero net debt.
type Split struct {
	// DebtorID is the member who owes this portion.
	DebtorID string

	// Owed is this member's share of the transaction total.
	Owed float64
}

// Transaction represents one recorded expense: who paid, how much, and how
// the total is split across members. Transactions are append-only; the sum
// of split amounts must match Total within the engine's epsilon, validated
// before the transaction is ever persisted.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// EventID is the event this transaction belongs to.
	EventID string

	// PayerID is the member who paid the total up front.
	PayerID string

	// Description is the human-readable label for the expense.
	Description string

	// Total is the full amount paid.
	Total float64

	// Splits is the per-member breakdown of who owes what.
	Splits []Split

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64
}
