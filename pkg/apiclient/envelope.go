package apiclient

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform wrapper every API response is assumed to follow.
// Code 200 denotes success; any other value is a server-reported failure
// regardless of the HTTP status the envelope arrived with.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the envelope denotes business success.
func (e Envelope) OK() bool {
	return e.Code == http.StatusOK
}

// ErrorMessage returns the server-provided failure description, falling back
// to a generic message when the server sent none.
func (e Envelope) ErrorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return genericFailure
}
