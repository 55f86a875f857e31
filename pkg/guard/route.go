package guard

import "net/url"

// Route is the navigation target with its authorization metadata. The
// metadata is static, defined at route-table construction time.
type Route struct {
	// Path is the route pattern, e.g. "/admin/users".
	Path string
	// FullPath is the concrete path including query, preserved as the
	// return target when the guard redirects to login.
	FullPath string
	// RequiresAuth marks the route as protected.
	RequiresAuth bool
	// Role, when non-empty, is required of the session's resolved role.
	// Compared case-insensitively.
	Role string
}

// State is a navigation attempt's position in the guard's state machine.
type State string

const (
	StateEvaluating State = "evaluating"
	StateAllowed    State = "allowed"
	StateRedirected State = "redirected"
)

// Decision is the terminal outcome of one navigation attempt.
type Decision struct {
	State  State
	Target string // redirect destination, set only when redirected
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool {
	return d.State == StateAllowed
}

func allow() Decision {
	return Decision{State: StateAllowed}
}

func redirect(target string) Decision {
	return Decision{State: StateRedirected, Target: target}
}

// loginTarget builds the login destination carrying the originally intended
// path as the `redirect` query parameter.
func loginTarget(loginPath, intended string) string {
	if intended == "" {
		return loginPath
	}
	q := url.Values{"redirect": {intended}}
	return loginPath + "?" + q.Encode()
}
