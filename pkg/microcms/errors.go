package microcms

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrBaseURLRequired  = errors.New("base URL is required")
	ErrAPIKeyRequired   = errors.New("API key is required")
	ErrInvalidBaseURL   = errors.New("invalid base URL")
	ErrEndpointRequired = errors.New("endpoint is required")
	ErrRequestFailed    = errors.New("request failed")
	ErrInvalidJSON      = errors.New("invalid JSON")
	ErrTrailingData     = errors.New("unexpected data after top-level value")
	ErrNilDecodeTarget  = errors.New("decode target must be a non-nil pointer")
)

// RequestFailedError is returned when the API answers with a non-2xx status.
// Body holds the raw response text so callers can inspect service specific
// error details. It is never retried by the client.
type RequestFailedError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s %s failed: %d %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrRequestFailed) match any RequestFailedError.
func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// DecodeError reports a failure to project a Value onto a caller type. It is
// distinct from RequestFailedError: the request itself succeeded.
type DecodeError struct {
	Target string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding into %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// RequestFailedError.
func StatusCode(err error) int {
	reqErr := &RequestFailedError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 response, which the API returns
// for a missing or wrong API key.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
