// Package models defines the core domain models for Settleup.
//
// # Models
//
//   - User: registered account, referenced everywhere else by ID
//   - Event: a bounded expense-sharing context with a member roster and currency
//   - Transaction: one recorded expense with per-member split details
//   - Settlement: a creditor-confirmed "debt paid" record
//
// # Design Principles
//
//  1. Transactions and settlements are append-only: created once, never
//     mutated or deleted. Reconciliation is always re-derived from the full
//     history, so correcting state means appending, not editing.
//  2. Models reference each other by ID strings, never by embedding, to
//     avoid circular references and keep storage rows flat.
//  3. Amounts are stored as float64 at rest; the reconciliation engine
//     (internal/reconcile) converts them to fixed-point decimals before any
//     arithmetic it performs.
package models
