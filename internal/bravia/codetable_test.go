package bravia_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braviactl/internal/bravia"
)

func TestCodeTable(t *testing.T) {
	t.Run("fetches and parses the remote controller table", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sony/system", r.URL.Path)
			assert.Contains(t, readBody(r), "getRemoteControllerInfo")

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(codeTableJSON))
		})
		defer server.Close()

		client := createTestClient(server.URL, bravia.WithCredential("auth=abc"))

		table, err := client.CodeTable()
		require.NoError(t, err)

		assert.Equal(t, bravia.PowerOff, table["PowerOff"])
		assert.Equal(t, bravia.Mute, table["Mute"])
		assert.Equal(t, bravia.VolumeUp, table["VolumeUp"])
	})

	t.Run("caches the table per host", func(t *testing.T) {
		fetches := 0
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			fetches++
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(codeTableJSON))
		})
		defer server.Close()

		client := createTestClient(server.URL, bravia.WithCredential("auth=abc"))

		_, err := client.CodeTable()
		require.NoError(t, err)
		_, err = client.CodeTable()
		require.NoError(t, err)

		assert.Equal(t, 1, fetches)

		// A second client against the same host also hits the cache.
		other := createTestClient(server.URL, bravia.WithCredential("auth=abc"))
		_, err = other.CodeTable()
		require.NoError(t, err)
		assert.Equal(t, 1, fetches)
	})

	t.Run("unauthorized fetch maps to ErrUnauthorized", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer server.Close()

		client := createTestClient(server.URL)
		_, err := client.CodeTable()

		assert.ErrorIs(t, err, bravia.ErrUnauthorized)
	})

	t.Run("malformed table is an error", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"result":[{"bundled":true}],"id":10}`))
		})
		defer server.Close()

		client := createTestClient(server.URL, bravia.WithCredential("auth=abc"))
		_, err := client.CodeTable()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "result shape")
	})
}

func TestDefaultCodeTable(t *testing.T) {
	table := bravia.DefaultCodeTable()

	assert.Equal(t, bravia.PowerOff, table["PowerOff"])
	assert.Equal(t, bravia.WakeUp, table["WakeUp"])
	assert.Equal(t, bravia.Netflix, table["Netflix"])
	assert.Equal(t, bravia.Confirm, table["Confirm"])
	assert.NotEmpty(t, table["VolumeUp"])

	// Keys line up with what the remote handle sends.
	for _, name := range []string{"Power", "Mute", "Play", "Pause", "Home", "Enter", "Return", "Stop"} {
		assert.Contains(t, table, name, "missing key %s", name)
	}
}
