package credential_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braviactl/internal/credential"
)

func TestMemory(t *testing.T) {
	t.Run("empty store reports not found", func(t *testing.T) {
		store := credential.NewMemory()

		_, err := store.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		store := credential.NewMemory()

		require.NoError(t, store.Set("auth=abc123"))

		token, err := store.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=abc123", token)
	})

	t.Run("set replaces the previous token", func(t *testing.T) {
		store := credential.NewMemory()

		require.NoError(t, store.Set("auth=old"))
		require.NoError(t, store.Set("auth=new"))

		token, err := store.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=new", token)
	})

	t.Run("clear empties the store", func(t *testing.T) {
		store := credential.NewMemory()

		require.NoError(t, store.Set("auth=abc"))
		require.NoError(t, store.Clear())

		_, err := store.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})
}

func TestFile(t *testing.T) {
	t.Run("missing file reports not found", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.yml")
		store := credential.NewFile(path, "tv.local", "Living Room")

		_, err := store.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("set persists across store rebuilds", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.yml")

		store := credential.NewFile(path, "tv.local", "Living Room")
		require.NoError(t, store.Set("auth=abc123"))

		rebuilt := credential.NewFile(path, "tv.local", "Living Room")
		token, err := rebuilt.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=abc123", token)
	})

	t.Run("credential file is private", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.yml")

		store := credential.NewFile(path, "tv.local", "Living Room")
		require.NoError(t, store.Set("auth=abc123"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("changing the device name invalidates the credential", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.yml")

		store := credential.NewFile(path, "tv.local", "Living Room")
		require.NoError(t, store.Set("auth=abc123"))

		renamed := credential.NewFile(path, "tv.local", "Bedroom")
		_, err := renamed.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("a different host does not see the credential", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.yml")

		store := credential.NewFile(path, "tv.local", "Living Room")
		require.NoError(t, store.Set("auth=abc123"))

		other := credential.NewFile(path, "other.local", "Living Room")
		_, err := other.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("clear removes the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.yml")

		store := credential.NewFile(path, "tv.local", "Living Room")
		require.NoError(t, store.Set("auth=abc123"))
		require.NoError(t, store.Clear())

		_, err := store.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)

		// Clearing twice is fine.
		require.NoError(t, store.Clear())
	})

	t.Run("creates parent directories as needed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "credentials.yml")

		store := credential.NewFile(path, "tv.local", "Living Room")
		require.NoError(t, store.Set("auth=abc123"))

		token, err := store.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=abc123", token)
	})
}
