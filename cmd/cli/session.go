package cli

import (
	"fmt"

	"braviactl/internal/bravia"
	"braviactl/internal/credential"
)

// session carries the device state handed from screen to screen: the
// credential store, a pairing in flight, and the remote once connected.
type session struct {
	config  bravia.DeviceConfig
	store   credential.Store
	debug   bool
	pairing *bravia.Pairing
	remote  *bravia.BraviaRemote
}

// openStore builds the credential store described by the session options.
func openStore(kind, path, host, deviceName string) (credential.Store, error) {
	switch kind {
	case "", "file":
		if path == "" {
			path = "credentials.yml"
		}
		return credential.NewFile(path, host, deviceName), nil
	case "sqlite":
		if path == "" {
			path = "credentials.db"
		}
		return credential.NewSQLite(path, host, deviceName)
	case "memory":
		return credential.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}

// connect opens the remote over the session's store. Called once the store
// holds a credential, or to probe whether one is already there.
func (s *session) connect() error {
	remote, err := bravia.Open(s.config, s.store, bravia.WithDebug(s.debug))
	if err != nil {
		return err
	}
	s.remote = remote
	return nil
}

// startPairing begins a fresh registration handshake. It returns
// bravia.ErrPINRequired when the TV put a PIN on screen, or nil when the TV
// recognized the client outright.
func (s *session) startPairing() error {
	client := bravia.NewBraviaClient(s.config.Host, bravia.WithDebug(s.debug))

	pairing, err := bravia.NewPairing(client, s.config, s.store)
	if err != nil {
		return err
	}
	s.pairing = pairing

	return pairing.Begin()
}

// completePairing finishes the handshake with the PIN the user typed.
func (s *session) completePairing(pin string) error {
	if s.pairing == nil {
		return fmt.Errorf("no pairing in progress")
	}
	return s.pairing.Complete(pin)
}
