package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/wellnesstracker/internal"
)

func sessionPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "session.json")
}

func TestFreshStoreIsUnauthenticated(t *testing.T) {
	s := NewStore(sessionPath(t), internal.NewNopLogger())
	assert.True(t, s.Loading())
	s.Load()
	assert.False(t, s.Loading())
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
}

func TestPersistAndRehydrate(t *testing.T) {
	path := sessionPath(t)
	logger := internal.NewNopLogger()

	s := NewStore(path, logger)
	s.Load()
	user := internal.User{ID: "u1", Email: "a@b.com"}
	assert.NoError(t, s.SetCredentials("tok123", user))
	assert.True(t, s.Authenticated())

	// A second store simulates restarting the client.
	s2 := NewStore(path, logger)
	s2.Load()
	assert.True(t, s2.Authenticated())
	assert.Equal(t, "tok123", s2.Token())
	assert.Equal(t, &user, s2.User())
}

func TestCorruptStateTreatedAsLoggedOut(t *testing.T) {
	path := sessionPath(t)
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	s := NewStore(path, internal.NewNopLogger())
	s.Load()
	assert.False(t, s.Authenticated())
}

func TestPartialStateTreatedAsLoggedOut(t *testing.T) {
	path := sessionPath(t)
	// Token present but no user: authenticated requires both.
	assert.NoError(t, os.WriteFile(path, []byte(`{"token":"tok123"}`), 0o644))

	s := NewStore(path, internal.NewNopLogger())
	s.Load()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
}

func TestClearRemovesEverything(t *testing.T) {
	path := sessionPath(t)
	logger := internal.NewNopLogger()

	s := NewStore(path, logger)
	s.Load()
	assert.NoError(t, s.SetCredentials("tok123", internal.User{ID: "u1", Email: "a@b.com"}))
	assert.NoError(t, s.Clear())

	assert.False(t, s.Authenticated())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	s2 := NewStore(path, logger)
	s2.Load()
	assert.False(t, s2.Authenticated())
}
