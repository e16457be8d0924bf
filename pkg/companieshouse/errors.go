package companieshouse

import "errors"

var (
	// ErrInvalidConfig is returned when the client configuration is incomplete
	ErrInvalidConfig = errors.New("invalid companies house configuration")

	// ErrInvalidRequest is returned when the request parameters are rejected
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrUnauthorized is returned when the API key is invalid
	ErrUnauthorized = errors.New("unauthorized: invalid API key")

	// ErrRateLimited is returned when the registry throttles the caller
	ErrRateLimited = errors.New("rate limited by companies house")

	// ErrSearchFailed is returned for any other non-2xx registry response
	ErrSearchFailed = errors.New("company search failed")

	// ErrNetworkError is returned when there's a network communication error
	ErrNetworkError = errors.New("network error")
)
