package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when an operation needs stored
// credentials that are absent.
var ErrNotAuthenticated = errors.New("no stored credentials for account")

// ConfigurationError means required setup is missing. It is user-actionable
// and never retried automatically.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required setting %s: add it to the environment or config file", e.Setting)
}

// AuthorizationError means the provider denied the device authorization or
// the device code expired. Terminal for the attempt.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("device authorization failed: %s", e.Reason)
}

// RemoteError is any non-success HTTP response from the provider.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote request failed (status %d): %s", e.Status, e.Message)
}

// IsCancelled reports whether err is a cancellation rather than a real
// failure, so callers can absorb it instead of surfacing it.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
