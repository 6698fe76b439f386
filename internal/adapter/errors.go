package adapter

import "errors"

var (
	// ErrNotFound is returned for HTTP 404: an invalid app id or a missing
	// catalog file.
	ErrNotFound = errors.New("catalog resource not found")
	// ErrParse is returned when a successful response body does not match
	// the expected JSON shape.
	ErrParse = errors.New("failed to parse catalog response")
	// ErrTransport is returned when the request could not be completed
	// (DNS, connection, TLS, timeout or cancellation).
	ErrTransport = errors.New("catalog transport error")
	// ErrHTTP is returned for any other non-success HTTP status.
	ErrHTTP = errors.New("unexpected catalog http status")
	// ErrInvalidAppID is returned before any request when the app id is empty.
	ErrInvalidAppID = errors.New("invalid app id")
	// ErrInvalidBaseURL is returned by the constructor for an unusable base URL.
	ErrInvalidBaseURL = errors.New("invalid catalog base url")
)
