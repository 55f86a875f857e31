package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/zhkhub/clientkit/pkg/async"
	"github.com/zhkhub/clientkit/pkg/logger"
	"github.com/zhkhub/clientkit/pkg/role"
)

// Credentials are the user-supplied sign-in inputs.
type Credentials struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// LoginResult is the payload of a successful authentication call. UserInfo
// may be absent; the store then resolves identity with a follow-up fetch.
type LoginResult struct {
	Token    string    `json:"token"`
	UserInfo *UserInfo `json:"userInfo,omitempty"`
}

// AuthAPI is the slice of the remote API the store needs: authentication and
// identity resolution. A nil UserInfo with a nil error means the identity
// endpoint answered successfully but without a usable payload.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	UserInfo(ctx context.Context) (*UserInfo, error)
}

// Store is the sole owner of the in-memory session state.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *UserInfo

	creds CredentialStore
	auth  AuthAPI
	log   *slog.Logger
}

// StoreOption configures the store at construction time.
type StoreOption func(*Store)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates an empty session store backed by the given credential
// persistence and authentication API.
func NewStore(creds CredentialStore, auth AuthAPI, opts ...StoreOption) *Store {
	s := &Store{
		creds: creds,
		auth:  auth,
		log:   slog.Default(),
	}
	if s.creds == nil {
		s.creds = NewMemoryCredentialStore()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates against the remote API. On success the token (and the
// identity, when the server embeds it) is adopted atomically and persisted.
// When the server issues only a token, identity is resolved with exactly one
// follow-up fetch before Login returns. Failures of the underlying call
// propagate unchanged; there is no retry.
func (s *Store) Login(ctx context.Context, creds Credentials) (Session, error) {
	if s.auth == nil {
		return Session{}, ErrNoAuthAPI
	}

	res, err := s.auth.Login(ctx, creds)
	if err != nil {
		return Session{}, err
	}
	if res == nil || res.Token == "" {
		// The server resolved the call without issuing a credential;
		// the session stays as it was.
		return s.Session(), nil
	}

	s.mu.Lock()
	s.token = res.Token
	if res.UserInfo != nil {
		s.user = res.UserInfo
	}
	s.mu.Unlock()

	if err := s.creds.Set(ctx, res.Token); err != nil {
		// The in-memory session is live either way; only restart recovery
		// is affected.
		s.log.Error("persisting session token failed", logger.Error(err))
	}

	if res.UserInfo == nil {
		if _, err := s.FetchUserInfo(ctx); err != nil {
			return s.Session(), err
		}
	}

	return s.Session(), nil
}

// FetchUserInfo resolves the identity for the current credential and
// replaces the stored identity. A well-formed call that carries no identity
// payload is a soft failure: the current identity is kept and no error is
// returned. Hard call failures propagate.
func (s *Store) FetchUserInfo(ctx context.Context) (*UserInfo, error) {
	if s.auth == nil {
		return nil, ErrNoAuthAPI
	}

	u, err := s.auth.UserInfo(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.log.Warn("identity endpoint returned no payload, keeping current identity")
		s.mu.RLock()
		cur := s.user
		s.mu.RUnlock()
		return cur, nil
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return u, nil
}

// Logout clears the session and removes the persisted token. It is
// idempotent: logging out an already-empty session is a no-op with the same
// end state.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.creds.Remove(ctx); err != nil && !errors.Is(err, ErrCredentialNotFound) {
		return err
	}
	return nil
}

// Init restores a persisted token at process start. When one is present it
// is adopted immediately and identity resolution runs as a detached task:
// startup never blocks on it and its failure is logged, not escalated. Until
// it lands, the session is a valid token-only transient state.
func (s *Store) Init(ctx context.Context) {
	token, err := s.creds.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrCredentialNotFound) {
			s.log.Warn("restoring persisted credential failed", logger.Error(err))
		}
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	async.Observe(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (*UserInfo, error) {
		return s.FetchUserInfo(ctx)
	}, func(err error) {
		s.log.Warn("restoring user identity failed", logger.Error(err))
	})
}

// Token returns the current credential; empty means unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a credential is present.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// User returns the resolved identity, if any.
func (s *Store) User() (*UserInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	return s.user, true
}

// Role returns the resolved, normalized role. The second return is false
// while the identity is unresolved or carries no role.
func (s *Store) Role() (role.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || s.user.Role == "" {
		return "", false
	}
	return role.New(s.user.Role), true
}

// Session returns a consistent snapshot of the current state.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{Token: s.token, User: s.user}
}
