package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliseodavidv/proyectocompleto/model"
)

func TestServiceLoadsPersistedToken(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("persisted-jwt"))

	s, err := NewService(store)
	require.NoError(t, err)
	assert.Equal(t, "persisted-jwt", s.Token())
	assert.True(t, s.Authenticated())
}

func TestSetTokenNotifiesListenersAndPersists(t *testing.T) {
	store := NewMemoryStore()
	s, err := NewService(store)
	require.NoError(t, err)

	var seen []string
	s.OnTokenChange(func(token string) { seen = append(seen, token) })

	require.NoError(t, s.SetToken("fresh-jwt"))
	assert.Equal(t, []string{"fresh-jwt"}, seen)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh-jwt", persisted)
}

func TestClearEndsSessionEverywhere(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("stale-jwt"))
	s, err := NewService(store)
	require.NoError(t, err)
	s.SetCurrentUser(&model.User{Id: 7, Name: "eliseo"})

	var seen []string
	s.OnTokenChange(func(token string) { seen = append(seen, token) })

	require.NoError(t, s.Clear())
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.CurrentUser())
	assert.Equal(t, []string{""}, seen, "listeners get an empty token on expiry")

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)

	// missing file reads as empty, not as an error
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("file-jwt"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "file-jwt", token)

	require.NoError(t, store.Delete())
	require.NoError(t, store.Delete(), "double delete is a no-op")
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
