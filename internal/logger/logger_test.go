package logger_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braviactl/internal/logger"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// everything written to it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestSilentByDefault(t *testing.T) {
	defer logger.SetSilentMode(true)

	out := captureStderr(t, func() {
		logger.SetSilentMode(true)
		log := logger.New()
		log.Info().Msg("should be discarded")
	})

	assert.Empty(t, out)
}

func TestVerboseModeEmits(t *testing.T) {
	defer logger.SetSilentMode(true)

	out := captureStderr(t, func() {
		logger.SetSilentMode(false)
		log := logger.New()
		log.Info().Msg("command logging enabled")
	})

	assert.Contains(t, out, "command logging enabled")
}

func TestLoggerMustBeFetchedAfterSilentModeChange(t *testing.T) {
	defer logger.SetSilentMode(true)

	logger.SetSilentMode(true)
	stale := logger.New() // captured while still silent

	out := captureStderr(t, func() {
		logger.SetSilentMode(false)
		fresh := logger.New()

		stale.Info().Msg("stale logger message")
		fresh.Info().Msg("fresh logger message")
	})

	// A logger fetched before the mode change keeps discarding, which is why
	// commands fetch theirs inside RunE after the verbose flag is applied.
	assert.NotContains(t, out, "stale logger message")
	assert.Contains(t, out, "fresh logger message")
}
