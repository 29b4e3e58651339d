package pathset

import "errors"

// Sentinel errors for spec parsing and pattern expansion.
var (
	// ErrLineFormat indicates a manifest line too short to carry the flag prefix.
	ErrLineFormat = errors.New("malformed spec line")
	// ErrPattern indicates an invalid glob pattern.
	ErrPattern = errors.New("invalid pattern")
)
