// Package credential holds the auth token obtained from pairing with a TV
// and makes it available across process restarts. Stores are pure value
// holders: no validation, no locking. Concurrent mutation of the same store
// is the caller's problem to serialize.
package credential

import "errors"

// ErrNotFound indicates the store holds no credential: the client has never
// paired, or the credential was cleared.
var ErrNotFound = errors.New("no credential stored")

// Store supplies the token that authorizes commands against the TV.
type Store interface {
	// Get returns the stored token, or ErrNotFound when never paired.
	Get() (string, error)

	// Set replaces the token, persisting it for reuse.
	Set(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}
