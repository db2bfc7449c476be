package reconcile

// Summary is the reconciliation result for one event, shaped for direct
// serialization. Amounts are two-decimal quantities in the event's currency.
type Summary struct {
	EventName   string        `json:"eventName"`
	Currency    string        `json:"currency"`
	Settlements []Instruction `json:"settlements"`
}

// Settled reports whether the event has no outstanding debts. This is a
// derived display state, not an enforced transition: new transactions may
// still be appended to a settled event.
func (s *Summary) Settled() bool {
	return len(s.Settlements) == 0
}

// Summarize runs the full reconciliation pipeline for one event: gross debts
// from the transaction ledger, reductions from the settlement log, the
// combined pairwise matrix, and finally pairwise netting.
//
// The computation is a pure function of its input. Running it twice on the
// same input yields identical output, including instruction order.
func Summarize(eventName, currency string, members []Member, transactions []Transaction, settlements []Settlement) (*Summary, error) {
	gross, err := GrossDebts(transactions)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}

	matrix := BuildMatrix(gross, Reductions(settlements), memberIDs)

	return &Summary{
		EventName:   eventName,
		Currency:    currency,
		Settlements: Net(matrix, members),
	}, nil
}
