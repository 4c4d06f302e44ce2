package hosting

import (
	"fmt"

	"github.com/pkg/errors"
)

// ProvisioningError site creation was rejected by the backend (auth,
// quota, name conflict). Never retried automatically.
type ProvisioningError struct {
	StatusCode int
	Reason     string
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("site provisioning failed (status %d): %s", e.StatusCode, e.Reason)
}

// TransportError a network-level failure talking to the backend.
// Retryable with backoff.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError the backend rejected the uploaded asset set itself
// (path or size limits). Not retryable - it indicates a renderer defect.
type ValidationError struct {
	StatusCode int
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("deploy rejected by provider (status %d): %s", e.StatusCode, e.Reason)
}

// AuthError authentication or authorization failure. Fatal to the whole
// publish operation.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("provider rejected credentials (status %d)", e.StatusCode)
}

// Retryable reports whether the error is worth another attempt
func Retryable(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
