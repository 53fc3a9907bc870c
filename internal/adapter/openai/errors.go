package openai

import (
	"errors"
	"fmt"
	"net"
)

// NetworkError indicates a network-level failure
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError indicates the endpoint answered with a non-success status
type StatusError struct {
	URL        string
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// ParseError indicates response parsing failed
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Classify names the failure kind for report detail lines. It never drives
// control flow, a failed call fails the check whatever the kind.
func Classify(err error) string {
	if err == nil {
		return "none"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	var networkError *NetworkError
	if errors.As(err, &networkError) {
		return "network"
	}

	var statusError *StatusError
	if errors.As(err, &statusError) {
		if statusError.StatusCode >= 400 && statusError.StatusCode < 500 {
			return "client_error"
		}
		return "server_error"
	}

	var parseError *ParseError
	if errors.As(err, &parseError) {
		return "parse"
	}

	return "unknown"
}
