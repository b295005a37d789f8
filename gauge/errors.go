package gauge

import "errors"

// Sentinel errors for the core operations. Callers classify failures with
// errors.Is; everything else is wrapped free-form context.
var (
	// ErrInvalidConfig is returned when a configuration value is out of
	// range or of the wrong type, e.g. nodes < 1.
	ErrInvalidConfig = errors.New("invalid gauge configuration")

	// ErrExecutableNotFound is returned when no gauge binary can be
	// located under the configured root or on PATH.
	ErrExecutableNotFound = errors.New("gauge executable not found")

	// ErrExecFailed is returned when the gauge process cannot be spawned
	// at all. A gauge run that starts and exits non-zero is NOT an error;
	// it is reported as a false result.
	ErrExecFailed = errors.New("gauge execution failed")
)
