package bravia

import "fmt"

// DeviceConfig identifies the TV to control and the name under which this
// controller registers itself. The TV keys registrations by nickname, so
// changing DeviceName invalidates any credential obtained under the old name.
type DeviceConfig struct {
	// Host is the hostname or IP address (optionally host:port) of the TV.
	Host string

	// DeviceName is the display name shown on the TV during pairing and the
	// nickname under which the registration is stored.
	DeviceName string
}

// Validate checks the configuration before any network call is made.
func (c DeviceConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if c.DeviceName == "" {
		return fmt.Errorf("%w: device name is required", ErrInvalidConfig)
	}
	return nil
}
