package timeline

import "errors"

var (
	// ErrNotFound is returned by Get-style lookups when no layer,
	// parameter, or marker exists for the given identifier. The Try*
	// forms report the same condition without an error.
	ErrNotFound = errors.New("identifier not found")

	// ErrTypeMismatch is returned when a channel is requested as a value
	// type other than the one it was built with.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrFormat is returned when serialized keyframe or marker data is
	// undersized or corrupt. Decoding never partially populates a result.
	ErrFormat = errors.New("malformed binary data")

	// ErrNoCodec is returned when a value type has no registered binary
	// codec. Like a missing interpolation strategy this is a setup bug,
	// not a runtime-recoverable condition.
	ErrNoCodec = errors.New("no binary codec registered")
)
