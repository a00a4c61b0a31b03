// Copyright 2025 Arion Yau
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bravia

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"braviactl/internal/credential"
	"braviactl/internal/logger"
)

// PairingState tracks progress of the registration handshake.
type PairingState int

const (
	// StateUnauthenticated is the initial state: no credential held, or the
	// previous one was rejected.
	StateUnauthenticated PairingState = iota

	// StateChallengeSent means the registration request went out and the TV
	// is now displaying a PIN on screen.
	StateChallengeSent

	// StateAuthenticated means the handshake finished and the credential
	// store has been populated.
	StateAuthenticated

	// StateFailed means the TV rejected the registration or the PIN. A new
	// pairing must be started from scratch.
	StateFailed
)

// String returns a human-readable state name.
func (s PairingState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateChallengeSent:
		return "challenge_sent"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PinFunc resolves the PIN challenge during pairing. It is invoked at most
// once per pairing attempt, after the TV has put the PIN on screen, and may
// block on user input for as long as it needs; the flow imposes no timeout.
type PinFunc func() (string, error)

// Pairing performs the one-time registration handshake with a TV and writes
// the resulting credential into a store. A Pairing is single-use: after it
// reaches StateAuthenticated or StateFailed, start a new one to retry.
type Pairing struct {
	client   *BraviaClient
	config   DeviceConfig
	store    credential.Store
	clientID string
	state    PairingState
	logger   zerolog.Logger
}

// NewPairing creates a pairing handshake for the given TV. The configuration
// is validated before any network call.
func NewPairing(client *BraviaClient, config DeviceConfig, store credential.Store) (*Pairing, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Pairing{
		client:   client,
		config:   config,
		store:    store,
		clientID: fmt.Sprintf("%s:%s", config.DeviceName, uuid.NewString()),
		state:    StateUnauthenticated,
		logger:   logger.New(),
	}, nil
}

// State returns the current handshake state.
func (p *Pairing) State() PairingState {
	return p.state
}

// Begin sends the unauthenticated registration request. On ErrPINRequired
// the TV is displaying a PIN and Complete must be called with it. A nil
// return means the TV recognized this client without a challenge and the
// credential has already been stored.
func (p *Pairing) Begin() error {
	if p.state != StateUnauthenticated {
		return fmt.Errorf("pairing already %s", p.state)
	}

	token, err := p.client.RegisterRequest(p.clientID, p.config.DeviceName, "")
	if err == nil {
		// Registered previously under this client id; no PIN round.
		return p.finish(token)
	}

	if errors.Is(err, ErrPINRequired) {
		p.state = StateChallengeSent
		p.logger.Debug().
			Str("host", p.config.Host).
			Str("nickname", p.config.DeviceName).
			Msg("TV issued PIN challenge")
		return ErrPINRequired
	}

	p.state = StateFailed
	return err
}

// Complete retries the registration with the PIN the user read off the
// screen, using HTTP Basic auth with an empty username. On success the
// credential store is populated; on rejection the store is left untouched
// and the pairing ends in StateFailed.
func (p *Pairing) Complete(pin string) error {
	if p.state != StateChallengeSent {
		return fmt.Errorf("no pending challenge: pairing is %s", p.state)
	}

	token, err := p.client.RegisterRequest(p.clientID, p.config.DeviceName, pin)
	if err != nil {
		p.state = StateFailed
		return err
	}

	return p.finish(token)
}

// Run drives the full handshake: register, resolve the PIN challenge through
// pinFunc, and register again. pinFunc is called exactly once, and only when
// the TV actually issues a challenge. There is no automatic retry: a
// rejected PIN surfaces as ErrPairingRejected and the caller restarts.
func (p *Pairing) Run(pinFunc PinFunc) error {
	err := p.Begin()
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrPINRequired) {
		return err
	}

	if pinFunc == nil {
		p.state = StateFailed
		return fmt.Errorf("%w: no PIN callback provided", ErrPairingRejected)
	}

	pin, err := pinFunc()
	if err != nil {
		p.state = StateFailed
		return fmt.Errorf("pin callback failed: %w", err)
	}

	return p.Complete(pin)
}

// finish stores the freshly obtained credential and marks the handshake
// authenticated.
func (p *Pairing) finish(token string) error {
	if err := p.store.Set(token); err != nil {
		p.state = StateFailed
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	p.client.SetCredential(token)
	p.state = StateAuthenticated

	p.logger.Info().
		Str("host", p.config.Host).
		Str("nickname", p.config.DeviceName).
		Msg("Paired with TV")

	return nil
}
