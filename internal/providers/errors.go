package providers

import "errors"

// ErrProviderUnavailable is returned when an adapter is not configured.
var ErrProviderUnavailable = errors.New("provider unavailable")
