package bravia

import "errors"

// Sentinel errors for the pairing and command paths. Transport failures are
// not translated; they carry the underlying net/http error in the chain.
var (
	// ErrInvalidConfig indicates a missing or malformed device address or
	// client name, detected before any network call.
	ErrInvalidConfig = errors.New("invalid device configuration")

	// ErrPINRequired indicates the TV answered a registration request with a
	// PIN challenge and is now displaying a code on screen.
	ErrPINRequired = errors.New("pin required")

	// ErrPairingRejected indicates the TV refused the PIN-authenticated
	// registration retry. The caller must restart pairing with a fresh PIN.
	ErrPairingRejected = errors.New("pairing rejected by device")

	// ErrUnauthorized indicates a command was attempted without a stored
	// credential, or the TV rejected the credential that was presented.
	ErrUnauthorized = errors.New("unauthorized")
)
