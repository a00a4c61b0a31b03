package bravia_test

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braviactl/internal/bravia"
	"braviactl/internal/credential"
	"braviactl/internal/device"
)

const codeTableJSON = `{"result":[{"bundled":true,"type":"RM-J1100"},[` +
	`{"name":"Power","value":"AAAAAQAAAAEAAAAVAw=="},` +
	`{"name":"PowerOff","value":"AAAAAQAAAAEAAAAvAw=="},` +
	`{"name":"Mute","value":"AAAAAQAAAAEAAAAUAw=="},` +
	`{"name":"VolumeUp","value":"AAAAAQAAAAEAAAASAw=="},` +
	`{"name":"VolumeDown","value":"AAAAAQAAAAEAAAATAw=="},` +
	`{"name":"Confirm","value":"AAAAAQAAAAEAAABlAw=="}]],"id":10}`

// tvHandler simulates a paired TV: code table on the system endpoint, 200 on
// IRCC when the expected cookie is presented.
func tvHandler(t *testing.T, cookie string, irccCount *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sony/system":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(codeTableJSON))
		case "/sony/IRCC":
			if r.Header.Get("Cookie") != cookie {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if irccCount != nil {
				*irccCount++
			}
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func readBody(r *http.Request) string {
	body, _ := io.ReadAll(r.Body)
	return string(body)
}

func testConfig(serverURL string) bravia.DeviceConfig {
	return bravia.DeviceConfig{
		Host:       strings.TrimPrefix(serverURL, "http://"),
		DeviceName: "Test Remote",
	}
}

func TestConnect(t *testing.T) {
	t.Run("stored credential skips pairing and never invokes the callback", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/sony/accessControl" {
				t.Error("pairing endpoint hit despite stored credential")
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(codeTableJSON))
		})
		defer server.Close()

		store := credential.NewMemory()
		require.NoError(t, store.Set("auth=stored"))

		callbacks := 0
		remote, err := bravia.Connect(testConfig(server.URL), store, func() (string, error) {
			callbacks++
			return "1234", nil
		})

		require.NoError(t, err)
		assert.Equal(t, 0, callbacks)
		assert.True(t, remote.Paired())
	})

	t.Run("empty store triggers the pairing flow before anything else", func(t *testing.T) {
		var irccCount int
		store := credential.NewMemory()
		cookie := "auth=fresh-token"

		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/sony/accessControl" {
				pairingHandler(t, "1234", cookie)(w, r)
				return
			}
			tvHandler(t, cookie, &irccCount)(w, r)
		})
		defer server.Close()

		callbacks := 0
		remote, err := bravia.Connect(testConfig(server.URL), store, func() (string, error) {
			callbacks++
			return "1234", nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, callbacks)
		assert.True(t, remote.Paired())

		token, err := store.Get()
		require.NoError(t, err)
		assert.Equal(t, cookie, token)

		// The freshly paired credential authorizes commands.
		require.NoError(t, remote.Mute())
		assert.Equal(t, 1, irccCount)
	})

	t.Run("rejected PIN surfaces and leaves the store empty", func(t *testing.T) {
		server := createMockServer(pairingHandler(t, "1234", "auth=tok"))
		defer server.Close()

		store := credential.NewMemory()
		_, err := bravia.Connect(testConfig(server.URL), store, func() (string, error) {
			return "0000", nil
		})

		assert.ErrorIs(t, err, bravia.ErrPairingRejected)
		_, err = store.Get()
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("invalid config fails before any network call", func(t *testing.T) {
		_, err := bravia.Connect(bravia.DeviceConfig{}, credential.NewMemory(), nil)
		assert.ErrorIs(t, err, bravia.ErrInvalidConfig)
	})
}

func TestOpen(t *testing.T) {
	t.Run("command with empty store fails locally with ErrUnauthorized", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected network call to %s", r.URL.Path)
		})
		defer server.Close()

		remote, err := bravia.Open(testConfig(server.URL), credential.NewMemory())
		require.NoError(t, err)
		assert.False(t, remote.Paired())

		assert.ErrorIs(t, remote.Mute(), bravia.ErrUnauthorized)
		assert.ErrorIs(t, remote.PowerOff(), bravia.ErrUnauthorized)

		_, err = remote.IsOn()
		assert.ErrorIs(t, err, bravia.ErrUnauthorized)
	})

	t.Run("revoked credential surfaces the device's unauthorized response", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			// TV revoked the registration: everything is 401 now.
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer server.Close()

		store := credential.NewMemory()
		require.NoError(t, store.Set("auth=revoked"))

		remote, err := bravia.Open(testConfig(server.URL), store)
		require.NoError(t, err)

		// No automatic re-pairing: the error reaches the caller.
		assert.ErrorIs(t, remote.Mute(), bravia.ErrUnauthorized)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("persisted credential is reused across client rebuilds", func(t *testing.T) {
		cookie := "auth=persistent"
		var irccCount int

		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/sony/accessControl" {
				pairingHandler(t, "7777", cookie)(w, r)
				return
			}
			tvHandler(t, cookie, &irccCount)(w, r)
		})
		defer server.Close()

		config := testConfig(server.URL)
		storePath := filepath.Join(t.TempDir(), "credentials.yml")

		// First run: pairing happens once.
		store := credential.NewFile(storePath, config.Host, config.DeviceName)
		callbacks := 0
		remote, err := bravia.Connect(config, store, func() (string, error) {
			callbacks++
			return "7777", nil
		})
		require.NoError(t, err)
		require.NoError(t, remote.Confirm())
		assert.Equal(t, 1, callbacks)

		// Second run: same persisted store, no re-pairing.
		rebuiltStore := credential.NewFile(storePath, config.Host, config.DeviceName)
		rebuilt, err := bravia.Connect(config, rebuiltStore, func() (string, error) {
			t.Error("PIN callback invoked despite persisted credential")
			return "", nil
		})
		require.NoError(t, err)
		require.NoError(t, rebuilt.Confirm())

		assert.Equal(t, 2, irccCount)
	})
}

func TestRemoteCommands(t *testing.T) {
	t.Run("volume keys repeat the IRCC code", func(t *testing.T) {
		cookie := "auth=vol"
		var irccCount int

		server := createMockServer(tvHandler(t, cookie, &irccCount))
		defer server.Close()

		store := credential.NewMemory()
		require.NoError(t, store.Set(cookie))

		remote, err := bravia.Open(testConfig(server.URL), store)
		require.NoError(t, err)

		require.NoError(t, remote.VolumeUp(3))
		assert.Equal(t, 3, irccCount)

		irccCount = 0
		require.NoError(t, remote.VolumeDown(0)) // default amount
		assert.Equal(t, 5, irccCount)
	})

	t.Run("IsOn parses the power status", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			if strings.Contains(readBody(r), "getPowerStatus") {
				w.Write([]byte(`{"result":[{"status":"active"}],"id":10}`))
				return
			}
			w.Write([]byte(codeTableJSON))
		})
		defer server.Close()

		store := credential.NewMemory()
		require.NoError(t, store.Set("auth=on"))

		remote, err := bravia.Open(testConfig(server.URL), store)
		require.NoError(t, err)

		on, err := remote.IsOn()
		require.NoError(t, err)
		assert.True(t, on)
	})
}

func TestProcess(t *testing.T) {
	t.Run("routes remote actions", func(t *testing.T) {
		cookie := "auth=proc"
		var irccCount int

		server := createMockServer(tvHandler(t, cookie, &irccCount))
		defer server.Close()

		store := credential.NewMemory()
		require.NoError(t, store.Set(cookie))

		remote, err := bravia.Open(testConfig(server.URL), store)
		require.NoError(t, err)

		actionJSON, err := bravia.CreateActionJSON(device.ActionRequest{
			Type:   device.ActionTypeRemote,
			Action: string(device.RemoteActionMute),
		})
		require.NoError(t, err)

		response, err := remote.Process(actionJSON)
		require.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, 1, irccCount)
	})

	t.Run("rejects unsupported actions without a network call", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/sony/system" {
				t.Errorf("unexpected request to %s", r.URL.Path)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(codeTableJSON))
		})
		defer server.Close()

		store := credential.NewMemory()
		require.NoError(t, store.Set("auth=x"))

		remote, err := bravia.Open(testConfig(server.URL), store)
		require.NoError(t, err)

		response, err := remote.Process([]byte(`{"type":"remote","action":"teleport"}`))
		require.NoError(t, err)
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "unsupported remote action")

		response, err = remote.Process([]byte(`{"type":"warp","action":"mute"}`))
		require.NoError(t, err)
		assert.False(t, response.Success)

		response, err = remote.Process([]byte(`not json`))
		require.NoError(t, err)
		assert.False(t, response.Success)
	})

	t.Run("unauthorized remote action propagates as an error", func(t *testing.T) {
		remote, err := bravia.Open(bravia.DeviceConfig{Host: "tv.invalid", DeviceName: "n"}, credential.NewMemory())
		require.NoError(t, err)

		actionJSON, err := bravia.CreateActionJSON(device.ActionRequest{
			Type:   device.ActionTypeRemote,
			Action: string(device.RemoteActionMute),
		})
		require.NoError(t, err)

		_, err = remote.Process(actionJSON)
		assert.ErrorIs(t, err, bravia.ErrUnauthorized)
	})

	t.Run("routes control actions", func(t *testing.T) {
		server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			if strings.Contains(readBody(r), "getPowerStatus") {
				w.Write([]byte(`{"result":[{"status":"standby"}],"id":1}`))
				return
			}
			w.Write([]byte(codeTableJSON))
		})
		defer server.Close()

		store := credential.NewMemory()
		require.NoError(t, store.Set("auth=ctl"))

		remote, err := bravia.Open(testConfig(server.URL), store)
		require.NoError(t, err)

		actionJSON, err := bravia.CreateActionJSON(device.ActionRequest{
			Type:   device.ActionTypeControl,
			Action: string(device.ControlActionPowerStatus),
		})
		require.NoError(t, err)

		response, err := remote.Process(actionJSON)
		require.NoError(t, err)
		assert.True(t, response.Success)
	})
}

func TestGetDeviceInfo(t *testing.T) {
	server := createMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(codeTableJSON))
	})
	defer server.Close()

	config := testConfig(server.URL)
	store := credential.NewMemory()
	require.NoError(t, store.Set("auth=info"))

	remote, err := bravia.Open(config, store)
	require.NoError(t, err)

	info := remote.GetDeviceInfo()
	assert.Equal(t, "bravia_tv", info.Type)
	assert.Equal(t, "Sony Bravia", info.Model)
	assert.Equal(t, config.Host, info.Address)
	assert.Equal(t, "Test Remote", info.Name)
	assert.True(t, info.Paired)
	assert.Contains(t, info.Capabilities, "remote_control")
}
