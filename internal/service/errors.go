package service

import "errors"

// Service-level errors surfaced to the transport layer. Engine errors
// (reconcile.ErrForbidden, reconcile.ErrInvalidTransaction, ...) and
// storage.ErrNotFound pass through unchanged.
var (
	ErrInvalidCurrency = errors.New("unknown currency code")
	ErrAlreadyMember   = errors.New("user is already a member of this event")
	ErrNotMember       = errors.New("you must be a member of this event")
	ErrUserNotFound    = errors.New("user not found")
)
