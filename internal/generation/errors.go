package generation

import "errors"

var (
	// ErrNotConfigured indicates no remote endpoint is configured.
	// Callers route straight to the deterministic fallback; this is not
	// an error condition worth logging.
	ErrNotConfigured = errors.New("generation endpoint not configured")

	// ErrUnavailable indicates the remote endpoint could not be reached.
	ErrUnavailable = errors.New("generation endpoint unavailable")

	// ErrTimeout indicates the generation request exceeded its timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrBadStatus indicates the endpoint answered with a non-2xx status.
	ErrBadStatus = errors.New("generation endpoint returned error status")

	// ErrEmptyReply indicates a success response carried no usable reply
	// in any of the recognized fields.
	ErrEmptyReply = errors.New("generation response missing reply")
)
