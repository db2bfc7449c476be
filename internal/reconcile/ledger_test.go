package reconcile

import (
	"errors"
	"testing"
)

func tx(id, payer string, total float64, splits map[string]float64) Transaction {
	t := Transaction{ID: id, PayerID: payer, Total: FromFloat(total)}
	for debtor, owed := range splits {
		t.Splits = append(t.Splits, Split{DebtorID: debtor, Owed: FromFloat(owed)})
	}
	return t
}

func TestValidateTransaction(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{
			name: "splits sum to total",
			tx:   tx("t1", "A", 60, map[string]float64{"B": 30, "C": 30}),
		},
		{
			name: "within epsilon tolerance",
			tx:   tx("t2", "A", 10, map[string]float64{"B": 3.33, "C": 3.33, "D": 3.335}),
		},
		{
			name:    "splits fall short of total",
			tx:      tx("t3", "A", 100, map[string]float64{"B": 45.25, "C": 45.25}),
			wantErr: true,
		},
		{
			name:    "splits exceed total",
			tx:      tx("t4", "A", 50, map[string]float64{"B": 30, "C": 30}),
			wantErr: true,
		},
		{
			name:    "no splits but nonzero total",
			tx:      tx("t5", "A", 25, nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransaction(tt.tx)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTransaction) {
				t.Errorf("error = %v, want ErrInvalidTransaction", err)
			}
		})
	}
}

func TestGrossDebts(t *testing.T) {
	transactions := []Transaction{
		tx("t1", "A", 60, map[string]float64{"B": 30, "C": 30}),
		tx("t2", "B", 20, map[string]float64{"A": 20}),
		// Self-split: A's share of its own payment contributes no debt.
		tx("t3", "A", 30, map[string]float64{"A": 10, "B": 20}),
	}

	gross, err := GrossDebts(transactions)
	if err != nil {
		t.Fatalf("GrossDebts failed: %v", err)
	}

	want := map[Pair]float64{
		{DebtorID: "B", CreditorID: "A"}: 50, // 30 from t1 + 20 from t3
		{DebtorID: "C", CreditorID: "A"}: 30,
		{DebtorID: "A", CreditorID: "B"}: 20,
	}
	if len(gross) != len(want) {
		t.Errorf("gross has %d entries, want %d", len(gross), len(want))
	}
	for pair, amount := range want {
		if got := gross.Amount(pair); !got.Equal(FromFloat(amount)) {
			t.Errorf("gross[%v] = %s, want %v", pair, got, amount)
		}
	}
}

func TestGrossDebtsFailsFastOnInvalidTransaction(t *testing.T) {
	transactions := []Transaction{
		tx("t1", "A", 60, map[string]float64{"B": 30, "C": 30}),
		tx("bad", "A", 100, map[string]float64{"B": 90.50}),
	}

	_, err := GrossDebts(transactions)
	if !errors.Is(err, ErrInvalidTransaction) {
		t.Fatalf("GrossDebts error = %v, want ErrInvalidTransaction", err)
	}
}

func TestReductions(t *testing.T) {
	settlements := []Settlement{
		{DebtorID: "B", CreditorID: "A", Amount: FromFloat(10)},
		{DebtorID: "B", CreditorID: "A", Amount: FromFloat(5)},
		{DebtorID: "C", CreditorID: "A", Amount: FromFloat(30)},
	}

	reductions := Reductions(settlements)

	if got := reductions.Amount(Pair{DebtorID: "B", CreditorID: "A"}); !got.Equal(FromFloat(15)) {
		t.Errorf("reductions[B->A] = %s, want 15", got)
	}
	if got := reductions.Amount(Pair{DebtorID: "C", CreditorID: "A"}); !got.Equal(FromFloat(30)) {
		t.Errorf("reductions[C->A] = %s, want 30", got)
	}
	if got := reductions.Amount(Pair{DebtorID: "A", CreditorID: "B"}); got.Sign() != 0 {
		t.Errorf("reductions[A->B] = %s, want zero", got)
	}
}
