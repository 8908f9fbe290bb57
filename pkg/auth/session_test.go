package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

func newTestDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "auth.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSessionStore_CreateValidate(t *testing.T) {
	sessions, err := NewSessionStore(newTestDB(t), time.Hour)
	require.NoError(t, err)

	session, err := sessions.Create("jane@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "jane@example.com", session.Email)

	validated, err := sessions.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Email, validated.Email)
}

func TestSessionStore_ValidateUnknownToken(t *testing.T) {
	sessions, err := NewSessionStore(newTestDB(t), time.Hour)
	require.NoError(t, err)

	_, err = sessions.Validate("never-issued")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestSessionStore_ExpiredSessionRejected(t *testing.T) {
	sessions, err := NewSessionStore(newTestDB(t), -time.Minute)
	require.NoError(t, err)

	session, err := sessions.Create("jane@example.com")
	require.NoError(t, err)

	_, err = sessions.Validate(session.Token)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestSessionStore_Delete(t *testing.T) {
	sessions, err := NewSessionStore(newTestDB(t), time.Hour)
	require.NoError(t, err)

	session, err := sessions.Create("jane@example.com")
	require.NoError(t, err)

	require.NoError(t, sessions.Delete(session.Token))
	_, err = sessions.Validate(session.Token)
	assert.True(t, domain.IsNotFound(err))

	// Revoking an unknown token is a no-op.
	assert.NoError(t, sessions.Delete("never-issued"))
}

func TestSessionStore_SweepRemovesExpired(t *testing.T) {
	db := newTestDB(t)

	expired, err := NewSessionStore(db, -time.Minute)
	require.NoError(t, err)
	dead, err := expired.Create("old@example.com")
	require.NoError(t, err)

	live, err := NewSessionStore(db, time.Hour)
	require.NoError(t, err)
	alive, err := live.Create("new@example.com")
	require.NoError(t, err)

	require.NoError(t, live.sweep())

	_, err = live.Validate(dead.Token)
	assert.True(t, domain.IsNotFound(err))
	_, err = live.Validate(alive.Token)
	assert.NoError(t, err)
}

func TestSessionStore_SweeperLifecycle(t *testing.T) {
	sessions, err := NewSessionStore(newTestDB(t), time.Hour)
	require.NoError(t, err)

	sessions.StartSweeper(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	sessions.StopSweeper()
	// Stopping twice must not panic.
	sessions.StopSweeper()
}
