package reconcile

import (
	"errors"
	"fmt"
)

// ErrInvalidTransaction means a transaction's split amounts do not sum to
// its total within epsilon. Transactions are validated at creation time, so
// hitting this inside the engine indicates a caller bug.
var ErrInvalidTransaction = errors.New("split amounts do not sum to the transaction total")

// ValidateTransaction checks the split-sum invariant: the split amounts must
// add up to the transaction total within epsilon. This is the boundary check
// run before a transaction is ever persisted.
func ValidateTransaction(tx Transaction) error {
	sum := Zero()
	for _, split := range tx.Splits {
		sum = sum.Add(split.Owed)
	}
	if !sum.Equal(tx.Total) {
		return fmt.Errorf("%w: splits sum to %s, total is %s", ErrInvalidTransaction, sum, tx.Total)
	}
	return nil
}

// GrossDebts accumulates the debt implied directly by transactions, before
// settlements are applied: for each split where the debtor is not the payer,
// the owed amount is added under (debtor, payer). Self-splits contribute
// nothing.
//
// Transactions are re-validated defensively; an invariant violation fails
// fast instead of silently producing an inconsistent matrix.
func GrossDebts(transactions []Transaction) (Matrix, error) {
	gross := make(Matrix)
	for _, tx := range transactions {
		if err := ValidateTransaction(tx); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		for _, split := range tx.Splits {
			if split.DebtorID == tx.PayerID {
				continue
			}
			gross.Accumulate(Pair{DebtorID: split.DebtorID, CreditorID: tx.PayerID}, split.Owed)
		}
	}
	return gross, nil
}

// Reductions sums settlement amounts per ordered (debtor, creditor) pair.
// Each entry is subtracted from the gross debt when the matrix is built.
func Reductions(settlements []Settlement) Matrix {
	reductions := make(Matrix)
	for _, s := range settlements {
		reductions.Accumulate(Pair{DebtorID: s.DebtorID, CreditorID: s.CreditorID}, s.Amount)
	}
	return reductions
}
