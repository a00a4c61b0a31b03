package bravia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"braviactl/internal/bravia"
)

func TestDeviceConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		config := bravia.DeviceConfig{Host: "192.168.1.100", DeviceName: "Living Room"}
		assert.NoError(t, config.Validate())
	})

	t.Run("missing host fails fast", func(t *testing.T) {
		config := bravia.DeviceConfig{DeviceName: "Living Room"}
		err := config.Validate()

		assert.ErrorIs(t, err, bravia.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "host")
	})

	t.Run("missing device name fails fast", func(t *testing.T) {
		config := bravia.DeviceConfig{Host: "192.168.1.100"}
		err := config.Validate()

		assert.ErrorIs(t, err, bravia.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "device name")
	})
}
