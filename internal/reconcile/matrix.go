package reconcile

// Pair is an ordered (debtor, creditor) key. Pair{A, B} and Pair{B, A} are
// independent entries: A may owe B from one transaction while B owes A from
// another.
type Pair struct {
	DebtorID   string
	CreditorID string
}

// Matrix is a sparse pairwise debt matrix keyed by ordered member pairs.
// Absent pairs read as zero.
type Matrix map[Pair]Money

// Amount returns the accumulated amount for p, or zero if absent.
func (m Matrix) Amount(p Pair) Money {
	return m[p]
}

// Accumulate adds amt to the entry for p.
func (m Matrix) Accumulate(p Pair, amt Money) {
	m[p] = m[p].Add(amt)
}

// Total sums every entry. Conservation holds when this equals the sum of all
// cross-member split amounts minus the sum of all settlement amounts.
func (m Matrix) Total() Money {
	total := Zero()
	for _, amt := range m {
		total = total.Add(amt)
	}
	return total
}

// BuildMatrix combines gross debts and settlement reductions into the final
// pairwise debt matrix: for every ordered pair (a, b) of distinct members,
// result[(a,b)] = gross[(a,b)] - reductions[(a,b)]. Every pair is present,
// including those no transaction or settlement ever touched.
func BuildMatrix(gross, reductions Matrix, memberIDs []string) Matrix {
	result := make(Matrix, len(memberIDs)*(len(memberIDs)-1))
	for _, debtor := range memberIDs {
		for _, creditor := range memberIDs {
			if debtor == creditor {
				continue
			}
			p := Pair{DebtorID: debtor, CreditorID: creditor}
			result[p] = gross.Amount(p).Sub(reductions.Amount(p))
		}
	}
	return result
}
