package reconcile

import "sort"

// Net collapses each unordered member pair's bidirectional debt into at most
// one directional instruction.
//
// Pairs are enumerated in canonical order (member IDs sorted, a < b), so the
// output is deterministic for a given input and never contains both a->b and
// b->a. For each pair, net = matrix[(a,b)] - matrix[(b,a)]; a net within
// epsilon of zero means the pair is settled and nothing is emitted. Amounts
// are rounded to the minor unit only here, at emission.
//
// The result is never nil: a fully settled event yields an empty list.
func Net(matrix Matrix, members []Member) []Instruction {
	ids := make([]string, 0, len(members))
	names := make(map[string]string, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
		names[m.ID] = m.Name
	}
	sort.Strings(ids)

	instructions := []Instruction{}
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			net := matrix.Amount(Pair{DebtorID: a, CreditorID: b}).
				Sub(matrix.Amount(Pair{DebtorID: b, CreditorID: a}))

			switch net.Sign() {
			case 1: // a owes b
				instructions = append(instructions, Instruction{
					FromID: a,
					From:   names[a],
					ToID:   b,
					To:     names[b],
					Amount: net.Round().Float64(),
				})
			case -1: // b owes a
				instructions = append(instructions, Instruction{
					FromID: b,
					From:   names[b],
					ToID:   a,
					To:     names[a],
					Amount: net.Neg().Round().Float64(),
				})
			}
		}
	}
	return instructions
}
