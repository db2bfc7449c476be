package reconcile

// Member identifies one event member for reconciliation purposes.
type Member struct {
	ID   string
	Name string
}

// Split is one member's share of a transaction total.
type Split struct {
	DebtorID string
	Owed     Money
}

// Transaction carries the minimal transaction information the engine needs.
// The service layer converts stored models into this form.
type Transaction struct {
	ID      string
	PayerID string
	Total   Money
	Splits  []Split
}

// Settlement carries the minimal settlement information the engine needs.
type Settlement struct {
	DebtorID    string
	CreditorID  string
	Amount      Money
	SettledByID string
}

// Instruction says that From still owes To exactly Amount. The ordered list
// of instructions for an event is the reconciliation result.
type Instruction struct {
	FromID string  `json:"fromId"`
	From   string  `json:"from"`
	ToID   string  `json:"toId"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
