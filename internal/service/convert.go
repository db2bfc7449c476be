package service

import (
	"settleup/internal/models"
	"settleup/internal/reconcile"
)

// The engine defines its own minimal input types; these helpers convert
// stored models into that form at the service boundary.

func toEngineMembers(event *models.Event, users map[string]*models.User) []reconcile.Member {
	members := make([]reconcile.Member, len(event.MemberIDs))
	for i, id := range event.MemberIDs {
		name := id // fall back to the raw ID if the roster is inconsistent
		if user, ok := users[id]; ok {
			name = user.Username
		}
		members[i] = reconcile.Member{ID: id, Name: name}
	}
	return members
}

func toEngineTransaction(tx *models.Transaction) reconcile.Transaction {
	splits := make([]reconcile.Split, len(tx.Splits))
	for i, split := range tx.Splits {
		splits[i] = reconcile.Split{
			DebtorID: split.DebtorID,
			Owed:     reconcile.FromFloat(split.Owed),
		}
	}
	return reconcile.Transaction{
		ID:      tx.ID,
		PayerID: tx.PayerID,
		Total:   reconcile.FromFloat(tx.Total),
		Splits:  splits,
	}
}

func toEngineSettlement(s *models.Settlement) reconcile.Settlement {
	return reconcile.Settlement{
		DebtorID:    s.DebtorID,
		CreditorID:  s.CreditorID,
		Amount:      reconcile.FromFloat(s.Amount),
		SettledByID: s.SettledByID,
	}
}
