package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// genericFailure is the fallback shown when the server reports a failure
// without a message.
const genericFailure = "request failed"

// ErrInvalidEnvelope indicates a response body that could not be parsed as
// the uniform envelope.
var ErrInvalidEnvelope = errors.New("apiclient: response is not a valid envelope")

// BusinessError is a server-reported failure: the call reached the server
// and came back inside an envelope with a non-200 code.
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// AuthExpiredError indicates an invalid or expired credential, reported
// either through an envelope code of 401 or a transport status of 401. It
// always coincides with session teardown (immediate for the transport
// variant, after user confirmation for the envelope variant).
type AuthExpiredError struct {
	Message string
}

func (e *AuthExpiredError) Error() string {
	return e.Message
}

// RequestError is a transport-level failure with an HTTP status but no
// usable envelope. The message is one of a fixed set of human-readable
// categories derived from the status.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NetworkError indicates the call was sent but no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network connection failed"
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsAuthExpired reports whether err is an authentication expiry failure.
func IsAuthExpired(err error) bool {
	var e *AuthExpiredError
	return errors.As(err, &e)
}

// IsBusinessError reports whether err is a server-reported envelope failure.
func IsBusinessError(err error) bool {
	var e *BusinessError
	return errors.As(err, &e)
}

// IsNetworkError reports whether err is a no-response transport failure.
func IsNetworkError(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

// transportMessage maps an HTTP status to its fixed user-facing category.
func transportMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request parameters"
	case http.StatusUnauthorized:
		return "unauthorized, please sign in again"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusNotFound:
		return "requested resource does not exist"
	case http.StatusInternalServerError:
		return "internal server error"
	default:
		return fmt.Sprintf("connection error %d", status)
	}
}
