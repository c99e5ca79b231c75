package masscode

import (
	"errors"
	"fmt"
)

// TransportError represents a network-level failure: connection refused,
// timeout, DNS. The massCode app is probably not running.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("masscode: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError represents a non-2xx HTTP response from the massCode API,
// carrying the status, reason phrase, and a bounded body preview.
type ProtocolError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("masscode: %s failed: %s. Body: %s", e.Op, e.Status, e.Body)
}

// DecodeError represents malformed JSON or an unexpected response shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("masscode: %s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransport checks if the error is a network-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsProtocol checks if the error is a non-2xx API response.
func IsProtocol(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

// IsDecode checks if the error is a deserialization failure.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
