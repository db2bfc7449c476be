// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"settleup/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for persistence operations. This abstraction
// allows swapping storage backends (SQLite, PostgreSQL, etc.) without
// changing the service layer.
//
// Transactions and settlements are append-only: the interface deliberately
// offers no update or delete for them.
type Store interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID. Returns (nil, nil) if absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) if absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUsername retrieves a user by username. Returns (nil, nil) if absent.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users keyed by ID. IDs that do not
	// resolve are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// CreateEvent persists a new event together with its initial roster.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent retrieves an event with its member roster.
	// Returns ErrNotFound if the event does not exist.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// ListEventsForUser retrieves the events the user is a member of,
	// newest first.
	ListEventsForUser(ctx context.Context, userID string) ([]*models.Event, error)

	// AddEventMember appends a user to an event's roster.
	AddEventMember(ctx context.Context, eventID, userID string) error

	// CreateTransaction appends a transaction and its splits.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// ListTransactionsByEvent retrieves an event's full transaction history,
	// oldest first.
	ListTransactionsByEvent(ctx context.Context, eventID string) ([]*models.Transaction, error)

	// CreateSettlement appends a settlement record.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByEvent retrieves an event's full settlement history,
	// oldest first.
	ListSettlementsByEvent(ctx context.Context, eventID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
