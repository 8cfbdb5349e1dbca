package nominatim

import "errors"

// Sentinel errors returned by the client. Operations wrap these with
// request-specific detail, so callers should match with errors.Is.
var (
	// ErrInvalidURL is returned by SetBaseURL when the value does not
	// parse as an absolute URL.
	ErrInvalidURL = errors.New("nominatim: invalid base url")

	// ErrRequestFailed covers transport errors, timeouts, and non-2xx
	// responses. Retry policy is left entirely to the caller.
	ErrRequestFailed = errors.New("nominatim: request failed")

	// ErrParseFailed is returned when a response body does not decode
	// into the expected JSON shape.
	ErrParseFailed = errors.New("nominatim: parse response")

	// ErrNoResult is returned by Reverse when the server answered
	// successfully but reported no place for the coordinate.
	ErrNoResult = errors.New("nominatim: no result")
)
