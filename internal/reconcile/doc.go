// Package reconcile implements the ledger reconciliation engine: given one
// event's transaction and settlement history, it computes the minimal set of
// outstanding directional debts between members.
//
// # Pipeline
//
//	GrossDebts(transactions) ─┐
//	                          ├─> BuildMatrix ─> Net ─> []Instruction
//	Reductions(settlements) ──┘
//
// Every function here is pure: no I/O, no shared mutable state, safe to run
// concurrently for independent events. The matrix is rebuilt from the full
// history on every call rather than cached, so results always reflect the
// snapshot the caller read.
//
// Netting is strictly pairwise. Cycles (A owes B owes C owes A) are not
// collapsed into fewer edges; whether they should be is an open question and
// must not be added silently.
//
// Malformed input is rejected at the boundary (ValidateTransaction,
// AuthorizeSettlement). The matrix and netting logic assume well-formed data;
// GrossDebts still re-checks the split-sum invariant and fails fast rather
// than producing an inconsistent matrix from a caller bug.
package reconcile
