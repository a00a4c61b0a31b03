package credential_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braviactl/internal/credential"
)

func newTestSQLite(t *testing.T, path, host, deviceName string) *credential.SQLite {
	t.Helper()

	store, err := credential.NewSQLite(path, host, deviceName)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLite(t *testing.T) {
	t.Run("empty database reports not found", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.db")
		store := newTestSQLite(t, path, "tv.local", "Living Room")

		_, err := store.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.db")
		store := newTestSQLite(t, path, "tv.local", "Living Room")

		require.NoError(t, store.Set("auth=abc123"))

		token, err := store.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=abc123", token)
	})

	t.Run("set upserts the existing row", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.db")
		store := newTestSQLite(t, path, "tv.local", "Living Room")

		require.NoError(t, store.Set("auth=old"))
		require.NoError(t, store.Set("auth=new"))

		token, err := store.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=new", token)
	})

	t.Run("credential survives reopening the database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.db")

		store, err := credential.NewSQLite(path, "tv.local", "Living Room")
		require.NoError(t, err)
		require.NoError(t, store.Set("auth=abc123"))
		require.NoError(t, store.Close())

		reopened := newTestSQLite(t, path, "tv.local", "Living Room")
		token, err := reopened.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=abc123", token)
	})

	t.Run("rows are scoped by host and device name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.db")

		living := newTestSQLite(t, path, "tv.local", "Living Room")
		bedroom := newTestSQLite(t, path, "tv.local", "Bedroom")
		other := newTestSQLite(t, path, "other.local", "Living Room")

		require.NoError(t, living.Set("auth=living"))
		require.NoError(t, bedroom.Set("auth=bedroom"))

		token, err := living.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=living", token)

		token, err = bedroom.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=bedroom", token)

		_, err = other.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("clear removes only this client's row", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.db")

		living := newTestSQLite(t, path, "tv.local", "Living Room")
		bedroom := newTestSQLite(t, path, "tv.local", "Bedroom")

		require.NoError(t, living.Set("auth=living"))
		require.NoError(t, bedroom.Set("auth=bedroom"))
		require.NoError(t, living.Clear())

		_, err := living.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)

		token, err := bedroom.Get()
		require.NoError(t, err)
		assert.Equal(t, "auth=bedroom", token)
	})

	t.Run("clear on an empty database succeeds", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.db")
		store := newTestSQLite(t, path, "tv.local", "Living Room")

		require.NoError(t, store.Clear())
	})
}
