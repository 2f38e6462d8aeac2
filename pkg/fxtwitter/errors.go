package fxtwitter

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse is returned when the body of a successful response
	// is not a non-empty JSON object.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnsupportedURL is returned for tweet URLs that are not absolute.
	ErrUnsupportedURL = errors.New("unknown url type")
	// ErrInvalidCount is returned when a negative timeline count is requested.
	ErrInvalidCount = errors.New("timeline count must not be negative")
)

// HTTPStatusError is returned for any non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Reason     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, e.Reason)
}

// APIError is returned when a timeline payload carries a code other than 200.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %s", e.Message)
}

// FetchError wraps every failure of Client.Tweet and Client.Timeline. It has
// already been logged by the client when it is returned.
type FetchError struct {
	Op  string
	URL string
	Err error
}

func (e *FetchError) Error() string {
	var statusErr *HTTPStatusError
	var apiErr *APIError
	if errors.As(e.Err, &statusErr) || errors.As(e.Err, &apiErr) {
		return e.Err.Error()
	}

	return fmt.Sprintf("error fetching %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
