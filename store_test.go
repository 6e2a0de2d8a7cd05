package freelance

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirStore_RoundTrip(t *testing.T) {
	store, err := OpenDirStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	_, found, err := store.Get(KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, found, "missing key must not be an error")

	require.NoError(t, store.Set(KeyCurrentUser, []byte("alice")))
	value, found, err := store.Get(KeyCurrentUser)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", string(value))

	// overwrite
	require.NoError(t, store.Set(KeyCurrentUser, []byte("bob")))
	value, _, err = store.Get(KeyCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, "bob", string(value))

	require.NoError(t, store.Delete(KeyCurrentUser))
	_, found, err = store.Get(KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, found)

	// deleting twice stays a no-op
	require.NoError(t, store.Delete(KeyCurrentUser))
}

func TestDirStore_HostileUsernameStaysInside(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenDirStore(filepath.Join(dir, "data"))
	require.NoError(t, err)

	key := UserDataKey("../../escape")
	require.NoError(t, store.Set(key, []byte("{}")))
	value, found, err := store.Get(key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", string(value))

	// nothing was written outside the store directory
	assert.NoFileExists(t, filepath.Join(dir, "escape"))
}
