package service

import (
	"context"
	"log/slog"
	"sync"

	"settleup/internal/metrics"
	"settleup/internal/models"
	"settleup/internal/reconcile"
	"settleup/internal/storage"
)

// SettlementService handles appending settlement records.
//
// Appends to one event's settlement log are serialized with a per-event
// mutex: two concurrent "mark as paid" requests for the same pair would both
// pass authorization and both append, double-crediting the debt.
type SettlementService struct {
	store storage.Store
	locks sync.Map // event ID -> *sync.Mutex
}

// NewSettlementService creates a new SettlementService with the given
// storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

func (s *SettlementService) eventLock(eventID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(eventID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Create authorizes and appends a settlement record. Only the creditor may
// confirm receipt; an unauthorized request leaves the settlement log
// unchanged.
func (s *SettlementService) Create(ctx context.Context, eventID, requesterID, debtorID, creditorID string, amount float64) (*models.Settlement, error) {
	mu := s.eventLock(eventID)
	mu.Lock()
	defer mu.Unlock()

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	members := make([]reconcile.Member, len(event.MemberIDs))
	for i, id := range event.MemberIDs {
		members[i] = reconcile.Member{ID: id}
	}

	record := reconcile.Settlement{
		DebtorID:    debtorID,
		CreditorID:  creditorID,
		Amount:      reconcile.FromFloat(amount),
		SettledByID: requesterID,
	}
	if err := reconcile.AuthorizeSettlement(requesterID, record, members); err != nil {
		metrics.SettlementsRejectedTotal.Inc()
		slog.Warn("Settlement rejected",
			"event_id", eventID,
			"requester_id", requesterID,
			"creditor_id", creditorID,
			"error", err,
		)
		return nil, err
	}

	settlement := &models.Settlement{
		EventID:     eventID,
		DebtorID:    debtorID,
		CreditorID:  creditorID,
		Amount:      amount,
		SettledByID: requesterID,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("CreateSettlement failed", "event_id", eventID, "error", err)
		return nil, err
	}

	slog.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"event_id", eventID,
		"debtor_id", debtorID,
		"creditor_id", creditorID,
		"amount", amount,
	)
	return settlement, nil
}
