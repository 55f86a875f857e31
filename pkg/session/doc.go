// Package session owns the client's authenticated session: the credential
// token plus the resolved user identity.
//
// Store is the single source of truth and the only writer. It is an
// explicitly constructed, injectable value rather than a process-wide
// singleton, so isolated instances can be wired per test. The request pipeline and the
// route guard read it and trigger its Logout/FetchUserInfo operations.
//
// # Lifecycle
//
// A Store starts empty. Login populates it from the authentication endpoint,
// persisting the token through a CredentialStore so it survives process
// restarts. Init restores a persisted token at startup and resolves the
// identity in the background; until that resolution lands, a non-empty token
// with a nil identity is a valid transient state. Logout clears everything
// atomically and is idempotent.
//
// FetchUserInfo deliberately swallows one failure mode: an identity response
// whose payload is missing leaves the current identity untouched and does
// not fail the caller, so a transient glitch never tears a session down.
// Hard call failures still propagate.
//
// Concurrent identity fetches are not deduplicated; the last write wins.
//
// # Credential persistence
//
// CredentialStore is a one-slot key-value contract with in-memory, file and
// redis implementations.
package session
