package session

import "errors"

var (
	// ErrCredentialNotFound indicates no token is persisted in the credential store
	ErrCredentialNotFound = errors.New("session: credential not found")

	// ErrNoAuthAPI indicates the store was constructed without an authentication API
	ErrNoAuthAPI = errors.New("session: no auth API configured")
)
