package mining

import "errors"

// Sentinel error kinds (spec.md §7). Wrap these with fmt.Errorf("...: %w", ErrX)
// at the point of detection so callers can still errors.Is against the kind.
var (
	// ErrInvalidConfig is returned when k <= 0 or workers < 0 (zero
	// workers selects the default count). Rejected before any work starts.
	ErrInvalidConfig = errors.New("mining: invalid configuration")

	// ErrMalformedInput is returned for a non-integer token or a
	// negative item id in a textual transaction source. The whole run
	// is rejected.
	ErrMalformedInput = errors.New("mining: malformed input")
)
