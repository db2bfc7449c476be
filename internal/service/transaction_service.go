package service

import (
	"context"
	"fmt"
	"log/slog"

	"settleup/internal/models"
	"settleup/internal/reconcile"
	"settleup/internal/storage"
)

// TransactionService handles appending expense transactions.
type TransactionService struct {
	store storage.Store
}

// NewTransactionService creates a new TransactionService with the given
// storage backend.
func NewTransactionService(store storage.Store) *TransactionService {
	return &TransactionService{store: store}
}

// Add validates and appends a transaction. The payer is the requester. The
// split-sum invariant is checked here, at the boundary, so invalid
// transactions never reach storage or the engine.
func (s *TransactionService) Add(ctx context.Context, eventID, payerID, description string, total float64, splits []models.Split) (*models.Transaction, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsMember(payerID) {
		return nil, ErrNotMember
	}
	for _, split := range splits {
		if !event.IsMember(split.DebtorID) {
			return nil, fmt.Errorf("%w: debtor %s", reconcile.ErrUnknownMember, split.DebtorID)
		}
	}

	transaction := &models.Transaction{
		EventID:     eventID,
		PayerID:     payerID,
		Description: description,
		Total:       total,
		Splits:      splits,
	}

	if err := reconcile.ValidateTransaction(toEngineTransaction(transaction)); err != nil {
		slog.Warn("Transaction rejected", "event_id", eventID, "error", err)
		return nil, err
	}

	if err := s.store.CreateTransaction(ctx, transaction); err != nil {
		slog.Error("CreateTransaction failed", "event_id", eventID, "error", err)
		return nil, err
	}

	slog.Info("Transaction recorded",
		"transaction_id", transaction.ID,
		"event_id", eventID,
		"payer_id", payerID,
		"total", total,
	)
	return transaction, nil
}
