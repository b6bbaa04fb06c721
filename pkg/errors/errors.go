package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies the possible failure modes of a RocketAPI call
type Kind string

const (
	// KindBadResponse means the API answered but the envelope or payload
	// was not usable (non-200 inner status, wrong content type, bad JSON)
	KindBadResponse Kind = "bad_response"

	// KindNotFound means the requested resource does not exist
	KindNotFound Kind = "not_found"

	// KindRequestError means the request never produced a usable
	// response (DNS, connect, timeout, request building)
	KindRequestError Kind = "request_error"
)

// Error represents a RocketAPI error with kind information
type Error struct {
	Kind    Kind
	Message string

	// Raw holds the envelope that produced the error, when one was received
	Raw json.RawMessage

	// cause is the underlying transport error for request errors
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rocketapi %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport error, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// BadResponse builds an Error for an unusable API response
func BadResponse(message string, raw json.RawMessage) *Error {
	return &Error{Kind: KindBadResponse, Message: message, Raw: raw}
}

// NotFound builds an Error for a missing resource
func NotFound(message string, raw json.RawMessage) *Error {
	return &Error{Kind: KindNotFound, Message: message, Raw: raw}
}

// RequestError builds an Error for a transport-level failure
func RequestError(message string, cause error) *Error {
	return &Error{Kind: KindRequestError, Message: message, cause: cause}
}

// IsBadResponse reports whether err is a RocketAPI bad response error
func IsBadResponse(err error) bool {
	return hasKind(err, KindBadResponse)
}

// IsNotFound reports whether err is a RocketAPI not found error
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsRequestError reports whether err is a RocketAPI request error
func IsRequestError(err error) bool {
	return hasKind(err, KindRequestError)
}

func hasKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}
