package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rhymond/go-money"

	"settleup/internal/metrics"
	"settleup/internal/models"
	"settleup/internal/reconcile"
	"settleup/internal/storage"
)

// EventService manages events, their rosters, and reconciliation summaries.
type EventService struct {
	store storage.Store
}

// NewEventService creates a new EventService with the given storage backend.
func NewEventService(store storage.Store) *EventService {
	return &EventService{store: store}
}

// EventDetails is an event with its roster and transaction history resolved.
type EventDetails struct {
	Event        *models.Event
	Members      map[string]*models.User
	Transactions []*models.Transaction
}

// Create creates a new event. The creator becomes the first member. The
// currency code must exist in the ISO registry; amounts are never converted,
// the code only labels the event.
func (s *EventService) Create(ctx context.Context, creatorID, name, currency string) (*models.Event, error) {
	if money.GetCurrency(currency) == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCurrency, currency)
	}

	event := &models.Event{
		Name:      name,
		CreatorID: creatorID,
		Currency:  currency,
		MemberIDs: []string{creatorID},
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		slog.Error("CreateEvent failed", "error", err)
		return nil, err
	}

	slog.Info("Event created", "event_id", event.ID, "name", event.Name, "currency", event.Currency)
	return event, nil
}

// AddMember adds the user with the given username to the event's roster and
// returns the updated roster. The requester must already be a member.
func (s *EventService) AddMember(ctx context.Context, eventID, requesterID, username string) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsMember(requesterID) {
		return nil, ErrNotMember
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	if event.IsMember(user.ID) {
		return nil, ErrAlreadyMember
	}

	if err := s.store.AddEventMember(ctx, eventID, user.ID); err != nil {
		slog.Error("AddEventMember failed", "event_id", eventID, "error", err)
		return nil, err
	}
	event.MemberIDs = append(event.MemberIDs, user.ID)

	slog.Info("Member added to event", "event_id", eventID, "user_id", user.ID)
	return event, nil
}

// ListForUser retrieves the events the user belongs to, newest first.
func (s *EventService) ListForUser(ctx context.Context, userID string) ([]*models.Event, error) {
	return s.store.ListEventsForUser(ctx, userID)
}

// Get retrieves an event with its roster and transaction history. The
// requester must be a member.
func (s *EventService) Get(ctx context.Context, eventID, requesterID string) (*EventDetails, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsMember(requesterID) {
		return nil, ErrNotMember
	}

	members, err := s.store.GetUsersByIDs(ctx, event.MemberIDs)
	if err != nil {
		return nil, err
	}
	transactions, err := s.store.ListTransactionsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &EventDetails{Event: event, Members: members, Transactions: transactions}, nil
}

// Summary reconciles the event's full transaction and settlement history
// into the outstanding net debts. The matrix is rebuilt from scratch on
// every call so the result always reflects the snapshot just read.
func (s *EventService) Summary(ctx context.Context, eventID, requesterID string) (*reconcile.Summary, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsMember(requesterID) {
		return nil, ErrNotMember
	}

	users, err := s.store.GetUsersByIDs(ctx, event.MemberIDs)
	if err != nil {
		return nil, err
	}
	storedTxs, err := s.store.ListTransactionsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	storedSettlements, err := s.store.ListSettlementsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	transactions := make([]reconcile.Transaction, len(storedTxs))
	for i, tx := range storedTxs {
		transactions[i] = toEngineTransaction(tx)
	}
	settlements := make([]reconcile.Settlement, len(storedSettlements))
	for i, settlement := range storedSettlements {
		settlements[i] = toEngineSettlement(settlement)
	}

	summary, err := reconcile.Summarize(event.Name, event.Currency, toEngineMembers(event, users), transactions, settlements)
	if err != nil {
		// Persisted history failing the engine's defensive re-validation is
		// a bug, not a user error.
		slog.Error("Reconciliation failed on persisted history", "event_id", eventID, "error", err)
		return nil, err
	}
	metrics.ReconciliationsTotal.Inc()

	slog.Info("Event reconciled",
		"event_id", eventID,
		"transactions", len(transactions),
		"settlements", len(settlements),
		"instructions", len(summary.Settlements),
	)
	return summary, nil
}
