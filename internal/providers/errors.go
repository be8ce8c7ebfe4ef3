package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError wraps a provider failure with the provider name. Permanent failures
// (a malformed document, a missing schema) are not worth retrying.
type FetchError struct {
	Provider  string
	Permanent bool
	Err       error
}

func (e *FetchError) Error() string {
	provider := e.Provider
	if provider == "" {
		provider = "provider"
	}
	if e.Err == nil {
		return provider + ": fetch failed"
	}
	return fmt.Sprintf("%s: %v", provider, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Permanent wraps err as a non-retryable fetch failure.
func Permanent(provider string, err error) error {
	return &FetchError{Provider: provider, Permanent: true, Err: err}
}

// Transient wraps err as a retryable fetch failure.
func Transient(provider string, err error) error {
	return &FetchError{Provider: provider, Err: err}
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsPermanent reports whether err is a FetchError marked permanent.
func IsPermanent(err error) bool {
	fe, ok := AsFetchError(err)
	return ok && fe.Permanent
}
