// Package account wraps the authentication and identity endpoints. Its
// Service satisfies session.AuthAPI, giving the session store its view of
// the remote API.
package account

import (
	"context"

	"github.com/zhkhub/clientkit/pkg/apiclient"
	"github.com/zhkhub/clientkit/pkg/session"
)

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
}

// Service calls the account endpoints through the request pipeline.
type Service struct {
	client *apiclient.Client
}

// New creates the account service on top of the given client.
func New(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// Login authenticates with mobile and password. The result may or may not
// embed the user identity; the session store handles both shapes.
func (s *Service) Login(ctx context.Context, creds session.Credentials) (*session.LoginResult, error) {
	var res session.LoginResult
	if err := s.client.Post(ctx, "/auth/login", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates a new account.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	return s.client.Post(ctx, "/auth/register", req, nil)
}

// UserInfo resolves the identity of the current credential. A success
// envelope without a payload yields (nil, nil); the session store treats
// that as a soft failure and keeps its current identity.
func (s *Service) UserInfo(ctx context.Context) (*session.UserInfo, error) {
	var u session.UserInfo
	if err := s.client.Get(ctx, "/users/info", &u); err != nil {
		return nil, err
	}
	if u.UserID == 0 {
		return nil, nil
	}
	return &u, nil
}
