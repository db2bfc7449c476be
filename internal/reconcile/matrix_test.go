package reconcile

import "testing"

func TestBuildMatrixCoversAllOrderedPairs(t *testing.T) {
	members := []string{"A", "B", "C"}
	matrix := BuildMatrix(make(Matrix), make(Matrix), members)

	// 3 members -> 6 ordered pairs, all present even with no history.
	if len(matrix) != 6 {
		t.Fatalf("matrix has %d entries, want 6", len(matrix))
	}
	for pair, amount := range matrix {
		if amount.Sign() != 0 {
			t.Errorf("matrix[%v] = %s, want zero", pair, amount)
		}
	}
	if _, ok := matrix[Pair{DebtorID: "A", CreditorID: "A"}]; ok {
		t.Error("matrix must not contain self-pairs")
	}
}

func TestBuildMatrixDirectionsAreIndependent(t *testing.T) {
	gross := make(Matrix)
	gross.Accumulate(Pair{DebtorID: "B", CreditorID: "A"}, FromFloat(50))
	gross.Accumulate(Pair{DebtorID: "A", CreditorID: "B"}, FromFloat(20))

	matrix := BuildMatrix(gross, make(Matrix), []string{"A", "B"})

	if got := matrix.Amount(Pair{DebtorID: "B", CreditorID: "A"}); !got.Equal(FromFloat(50)) {
		t.Errorf("matrix[B->A] = %s, want 50", got)
	}
	if got := matrix.Amount(Pair{DebtorID: "A", CreditorID: "B"}); !got.Equal(FromFloat(20)) {
		t.Errorf("matrix[A->B] = %s, want 20", got)
	}
}

// Conservation: the matrix total must equal the sum of all cross-member
// split amounts minus the sum of all settlement amounts.
func TestBuildMatrixConservation(t *testing.T) {
	transactions := []Transaction{
		tx("t1", "A", 60, map[string]float64{"B": 30, "C": 30}),
		tx("t2", "B", 50, map[string]float64{"A": 20, "C": 30}),
		tx("t3", "C", 45, map[string]float64{"C": 15, "A": 15, "B": 15}),
	}
	settlements := []Settlement{
		{DebtorID: "B", CreditorID: "A", Amount: FromFloat(10)},
		{DebtorID: "C", CreditorID: "B", Amount: FromFloat(7.50)},
	}

	gross, err := GrossDebts(transactions)
	if err != nil {
		t.Fatalf("GrossDebts failed: %v", err)
	}
	matrix := BuildMatrix(gross, Reductions(settlements), []string{"A", "B", "C"})

	// Cross-member splits: 30+30 + 20+30 + 15+15 = 140. Settlements: 17.50.
	want := FromFloat(140).Sub(FromFloat(17.50))
	if got := matrix.Total(); !got.Equal(want) {
		t.Errorf("matrix.Total() = %s, want %s", got, want)
	}
}
