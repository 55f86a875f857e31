package session

import (
	"time"

	"github.com/zhkhub/clientkit/pkg/role"
)

// Session is a consistent snapshot of the authenticated identity. An empty
// Token means unauthenticated; a non-empty Token with a nil User means the
// identity has not been resolved yet.
type Session struct {
	Token string
	User  *UserInfo
}

// Authenticated reports whether the session carries a credential.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Account status values as reported by the platform.
const (
	StatusActive = 1
	StatusFrozen = 2
)

// UserInfo is the structured identity record resolved for a session.
type UserInfo struct {
	UserID     int64     `json:"userId"`
	Nickname   string    `json:"nickname,omitempty"`
	Mobile     string    `json:"mobile,omitempty"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	Role       string    `json:"role,omitempty"`
	ZhimaScore int       `json:"zhimaScore,omitempty"`
	Status     int       `json:"status,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// NormalizedRole returns the user's role in comparison-ready form.
func (u *UserInfo) NormalizedRole() role.Role {
	if u == nil {
		return ""
	}
	return role.New(u.Role)
}
