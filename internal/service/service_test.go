package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"settleup/internal/models"
	"settleup/internal/storage"
	"settleup/internal/storage/sqlite"
)

// newTestStore creates a throwaway SQLite store for one test.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestUser persists a user and returns it.
func newTestUser(t *testing.T, store storage.Store, username string) *models.User {
	t.Helper()

	user := models.NewUser(username, username+"@example.com", "not-a-real-hash")
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

// newTestEvent persists an event whose roster is the given users.
func newTestEvent(t *testing.T, store storage.Store, name string, users ...*models.User) *models.Event {
	t.Helper()

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	event := &models.Event{
		Name:      name,
		CreatorID: ids[0],
		Currency:  "USD",
		MemberIDs: ids,
	}
	require.NoError(t, store.CreateEvent(context.Background(), event))
	return event
}
