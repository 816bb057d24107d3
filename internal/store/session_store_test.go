package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirstydigital/django/internal/config"
	"github.com/thirstydigital/django/internal/logger"
)

func newTestSessionStore(t *testing.T) SessionStore {
	t.Helper()
	ctx := context.Background()
	l := logger.Nop()

	db, err := NewConnectSQLite(ctx, config.Sessions{DSN: ":memory:"}, l)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewSessionStore(ctx, db, l)
	require.NoError(t, err)
	return store
}

func TestSessionStore_CreateAndFind(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	created, err := store.CreateSession(ctx, 42, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, created.Key)

	found, err := store.FindSession(ctx, created.Key)
	require.NoError(t, err)
	assert.Equal(t, created.Key, found.Key)
	assert.Equal(t, int64(42), found.UserID)
}

func TestSessionStore_FindUnknownKey(t *testing.T) {
	store := newTestSessionStore(t)

	_, err := store.FindSession(context.Background(), "no-such-key")

	assert.True(t, errors.Is(err, ErrNoSessionWasFound))
}

func TestSessionStore_ExpiredSessionNotFound(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	created, err := store.CreateSession(ctx, 0, -time.Minute)
	require.NoError(t, err)

	_, err = store.FindSession(ctx, created.Key)

	assert.True(t, errors.Is(err, ErrNoSessionWasFound))
}

func TestSessionStore_MessageGetAndDelete(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	session, err := store.CreateSession(ctx, 0, time.Hour)
	require.NoError(t, err)

	_, err = store.AddMessage(ctx, session.Key, "first")
	require.NoError(t, err)
	_, err = store.AddMessage(ctx, session.Key, "second")
	require.NoError(t, err)

	messages, err := store.GetAndDeleteMessages(ctx, session.Key)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)

	// the queue is consumed on read
	again, err := store.GetAndDeleteMessages(ctx, session.Key)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	expired, err := store.CreateSession(ctx, 0, -time.Minute)
	require.NoError(t, err)
	_, err = store.AddMessage(ctx, expired.Key, "stale")
	require.NoError(t, err)

	alive, err := store.CreateSession(ctx, 0, time.Hour)
	require.NoError(t, err)

	deleted, err := store.DeleteExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = store.FindSession(ctx, alive.Key)
	assert.NoError(t, err)
}

func TestSessionStore_DeleteExpiredLocalZone(t *testing.T) {
	restore := time.Local
	time.Local = time.FixedZone("UTC+8", 8*60*60)
	t.Cleanup(func() { time.Local = restore })

	store := newTestSessionStore(t)
	ctx := context.Background()

	alive, err := store.CreateSession(ctx, 7, 4*time.Hour)
	require.NoError(t, err)

	deleted, err := store.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	found, err := store.FindSession(ctx, alive.Key)
	require.NoError(t, err)
	assert.Equal(t, alive.Key, found.Key)
}
