package role

import "strings"

// Role is a normalized user role. The zero value means "no role resolved".
type Role string

// New normalizes a raw role string into a Role. Leading/trailing whitespace
// is stripped and the value is lower-cased so that comparisons are total.
func New(raw string) Role {
	return Role(strings.ToLower(strings.TrimSpace(raw)))
}

// IsZero reports whether the role is empty (identity not resolved or the
// user carries no role).
func (r Role) IsZero() bool {
	return r == ""
}

// Matches reports whether the role equals the given raw role string,
// ignoring case. A zero role matches nothing.
func (r Role) Matches(raw string) bool {
	if r.IsZero() {
		return false
	}
	return r == New(raw)
}

// Equals reports whether two normalized roles are the same.
func (r Role) Equals(other Role) bool {
	return r == other
}

func (r Role) String() string {
	return string(r)
}
