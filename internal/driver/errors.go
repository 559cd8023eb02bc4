package driver

import "errors"

// ErrStopped is returned by operations on a driver whose loop has exited.
var ErrStopped = errors.New("driver: stopped")

// ConfigError reports configuration rejected before the driver could run.
// It wraps typing.ErrNoPhrases or typing.ErrNegativeDuration.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "driver: invalid " + e.Field + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
