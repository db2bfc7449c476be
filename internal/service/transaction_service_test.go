package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settleup/internal/models"
	"settleup/internal/reconcile"
)

func TestTransactionAdd(t *testing.T) {
	store := newTestStore(t)
	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")
	carol := newTestUser(t, store, "carol")
	event := newTestEvent(t, store, "Dinner", alice, bob, carol)
	svc := NewTransactionService(store)
	ctx := context.Background()

	tx, err := svc.Add(ctx, event.ID, alice.ID, "Dinner at Soho", 60, []models.Split{
		{DebtorID: bob.ID, Owed: 30},
		{DebtorID: carol.ID, Owed: 30},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.NotZero(t, tx.CreatedAt)

	stored, err := store.ListTransactionsByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Dinner at Soho", stored[0].Description)
	assert.Len(t, stored[0].Splits, 2)
}

// The split-sum invariant is checked before anything is persisted.
func TestTransactionAddRejectsSplitSumMismatch(t *testing.T) {
	store := newTestStore(t)
	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")
	event := newTestEvent(t, store, "Dinner", alice, bob)
	svc := NewTransactionService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, event.ID, alice.ID, "Broken", 100, []models.Split{
		{DebtorID: bob.ID, Owed: 90.50},
	})
	assert.ErrorIs(t, err, reconcile.ErrInvalidTransaction)

	stored, err := store.ListTransactionsByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestTransactionAddRequiresMembership(t *testing.T) {
	store := newTestStore(t)
	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")
	outsider := newTestUser(t, store, "mallory")
	event := newTestEvent(t, store, "Dinner", alice, bob)
	svc := NewTransactionService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, event.ID, outsider.ID, "Sneaky", 10, []models.Split{
		{DebtorID: alice.ID, Owed: 10},
	})
	assert.ErrorIs(t, err, ErrNotMember)

	_, err = svc.Add(ctx, event.ID, alice.ID, "Sneaky", 10, []models.Split{
		{DebtorID: outsider.ID, Owed: 10},
	})
	assert.ErrorIs(t, err, reconcile.ErrUnknownMember)
}
