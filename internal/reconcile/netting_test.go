package reconcile

import (
	"reflect"
	"testing"
)

var abc = []Member{
	{ID: "A", Name: "alice"},
	{ID: "B", Name: "bob"},
	{ID: "C", Name: "carol"},
}

func netted(t *testing.T, members []Member, transactions []Transaction, settlements []Settlement) []Instruction {
	t.Helper()

	gross, err := GrossDebts(transactions)
	if err != nil {
		t.Fatalf("GrossDebts failed: %v", err)
	}
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return Net(BuildMatrix(gross, Reductions(settlements), ids), members)
}

func TestNetSingleTransaction(t *testing.T) {
	instructions := netted(t, abc, []Transaction{
		tx("t1", "A", 60, map[string]float64{"B": 30, "C": 30}),
	}, nil)

	want := []Instruction{
		{FromID: "B", From: "bob", ToID: "A", To: "alice", Amount: 30},
		{FromID: "C", From: "carol", ToID: "A", To: "alice", Amount: 30},
	}
	if !reflect.DeepEqual(instructions, want) {
		t.Errorf("instructions = %+v, want %+v", instructions, want)
	}
}

func TestNetMutualDebtNetsDown(t *testing.T) {
	instructions := netted(t, abc, []Transaction{
		tx("t1", "A", 50, map[string]float64{"B": 50}),
		tx("t2", "B", 20, map[string]float64{"A": 20}),
	}, nil)

	want := []Instruction{
		{FromID: "B", From: "bob", ToID: "A", To: "alice", Amount: 30},
	}
	if !reflect.DeepEqual(instructions, want) {
		t.Errorf("instructions = %+v, want %+v", instructions, want)
	}
}

func TestNetSettlementFullyClearsDebt(t *testing.T) {
	instructions := netted(t, abc, []Transaction{
		tx("t1", "A", 50, map[string]float64{"B": 50}),
		tx("t2", "B", 20, map[string]float64{"A": 20}),
	}, []Settlement{
		{DebtorID: "B", CreditorID: "A", Amount: FromFloat(30), SettledByID: "A"},
	})

	if len(instructions) != 0 {
		t.Errorf("instructions = %+v, want empty", instructions)
	}
	if instructions == nil {
		t.Error("instructions must be an empty list, not nil")
	}
}

func TestNetEpsilonBoundary(t *testing.T) {
	tests := []struct {
		name      string
		remainder float64
		wantEmit  bool
	}{
		{name: "exactly one minor unit is emitted", remainder: 0.01, wantEmit: true},
		{name: "below one minor unit is settled", remainder: 0.009, wantEmit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix := BuildMatrix(Matrix{
				{DebtorID: "B", CreditorID: "A"}: FromFloat(tt.remainder),
			}, make(Matrix), []string{"A", "B"})

			instructions := Net(matrix, abc[:2])
			if got := len(instructions) == 1; got != tt.wantEmit {
				t.Fatalf("emitted = %v, want %v (instructions %+v)", got, tt.wantEmit, instructions)
			}
			if tt.wantEmit && instructions[0].Amount != tt.remainder {
				t.Errorf("amount = %v, want %v", instructions[0].Amount, tt.remainder)
			}
		})
	}
}

// Netting must never emit both a->b and b->a for the same pair.
func TestNetSymmetry(t *testing.T) {
	instructions := netted(t, abc, []Transaction{
		tx("t1", "A", 100, map[string]float64{"B": 60, "C": 40}),
		tx("t2", "B", 80, map[string]float64{"A": 50, "C": 30}),
		tx("t3", "C", 70, map[string]float64{"A": 35, "B": 35}),
	}, nil)

	seen := make(map[[2]string]bool)
	for _, instr := range instructions {
		if seen[[2]string{instr.ToID, instr.FromID}] {
			t.Errorf("both directions emitted for pair %s/%s", instr.FromID, instr.ToID)
		}
		seen[[2]string{instr.FromID, instr.ToID}] = true
	}
}

// Same frozen input, same output, including order.
func TestNetIdempotence(t *testing.T) {
	transactions := []Transaction{
		tx("t1", "A", 100, map[string]float64{"B": 60, "C": 40}),
		tx("t2", "C", 25, map[string]float64{"B": 12.50, "A": 12.50}),
	}
	settlements := []Settlement{
		{DebtorID: "B", CreditorID: "A", Amount: FromFloat(20), SettledByID: "A"},
	}

	first := netted(t, abc, transactions, settlements)
	for i := 0; i < 10; i++ {
		if again := netted(t, abc, transactions, settlements); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}

// Output follows canonical pair order regardless of member list order.
func TestNetOrderIsCanonical(t *testing.T) {
	shuffled := []Member{abc[2], abc[0], abc[1]}
	transactions := []Transaction{
		tx("t1", "C", 40, map[string]float64{"A": 20, "B": 20}),
		tx("t2", "B", 10, map[string]float64{"A": 10}),
	}

	want := netted(t, abc, transactions, nil)
	got := netted(t, shuffled, transactions, nil)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order depends on member list order: %+v vs %+v", got, want)
	}
}

// Rounding happens once at emission, never mid-computation: three thirds of
// ten accumulate exactly, so the net owed is 6.67 after a single rounding.
func TestNetRoundsOnlyAtEmission(t *testing.T) {
	instructions := netted(t, abc[:2], []Transaction{
		tx("t1", "A", 10, map[string]float64{"A": 3.334, "B": 3.333 + 3.333}),
	}, nil)

	if len(instructions) != 1 {
		t.Fatalf("instructions = %+v, want one", instructions)
	}
	if instructions[0].Amount != 6.67 {
		t.Errorf("amount = %v, want 6.67", instructions[0].Amount)
	}
}
