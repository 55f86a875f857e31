package guard

import (
	"context"
	"log/slog"

	"github.com/zhkhub/clientkit/pkg/logger"
	"github.com/zhkhub/clientkit/pkg/role"
	"github.com/zhkhub/clientkit/pkg/session"
)

// Sessions is the read side of the session store the guard consults, plus
// the one escape hatch it may trigger: resolving a missing identity.
type Sessions interface {
	Token() string
	Role() (role.Role, bool)
	FetchUserInfo(ctx context.Context) (*session.UserInfo, error)
}

// Notifier surfaces the guard's user-facing notices.
type Notifier interface {
	Error(message string)
	Warn(message string)
}

// Navigator replaces a denied navigation with the decision's target.
type Navigator interface {
	Redirect(target string)
}

type nopNotifier struct{}

func (nopNotifier) Error(string) {}

func (nopNotifier) Warn(string) {}

// Guard evaluates, before each navigation, whether the target route is
// permitted given the current session state.
type Guard struct {
	sessions Sessions
	notifier Notifier
	nav      Navigator
	log      *slog.Logger

	loginPath    string
	registerPath string
	homePath     string
}

// Option configures the guard at construction time.
type Option func(*Guard)

// WithNotifier sets the user-facing message sink.
func WithNotifier(n Notifier) Option {
	return func(g *Guard) {
		if n != nil {
			g.notifier = n
		}
	}
}

// WithNavigator sets the collaborator Authorize uses to apply redirects.
func WithNavigator(nav Navigator) Option {
	return func(g *Guard) {
		g.nav = nav
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// WithPaths overrides the login, register and home routes.
func WithPaths(login, register, home string) Option {
	return func(g *Guard) {
		if login != "" {
			g.loginPath = login
		}
		if register != "" {
			g.registerPath = register
		}
		if home != "" {
			g.homePath = home
		}
	}
}

// New creates a guard reading from the given session store.
func New(sessions Sessions, opts ...Option) *Guard {
	g := &Guard{
		sessions:     sessions,
		notifier:     nopNotifier{},
		log:          slog.Default(),
		loginPath:    "/login",
		registerPath: "/register",
		homePath:     "/home",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate runs one navigation attempt through the state machine and
// returns its terminal decision. Notices are surfaced through the Notifier;
// applying the redirect is left to the caller (see Authorize).
func (g *Guard) Evaluate(ctx context.Context, to Route) Decision {
	if !to.RequiresAuth {
		// A signed-in user has no business on the sign-in pages.
		if (to.Path == g.loginPath || to.Path == g.registerPath) && g.sessions.Token() != "" {
			return redirect(g.homePath)
		}
		return allow()
	}

	if g.sessions.Token() == "" {
		g.notifier.Warn("please sign in first")
		return redirect(loginTarget(g.loginPath, to.FullPath))
	}

	if to.Role == "" {
		return allow()
	}

	r, ok := g.sessions.Role()
	if !ok {
		return g.resolveRole(ctx, to)
	}
	if !r.Matches(to.Role) {
		g.log.Debug("role mismatch",
			slog.String("path", to.Path),
			slog.String("route_role", to.Role),
			slog.String("user_role", r.String()))
		g.notifier.Error("access not authorized")
		return redirect(g.homePath)
	}

	return allow()
}

// resolveRole handles the one asynchronous escape path: the route demands a
// role but the identity has not been resolved. The navigation suspends on a
// fetch and the comparison is re-run against whatever it produced.
func (g *Guard) resolveRole(ctx context.Context, to Route) Decision {
	if _, err := g.sessions.FetchUserInfo(ctx); err != nil {
		g.log.Warn("identity fetch during navigation failed",
			slog.String("path", to.Path), logger.Error(err))
		g.notifier.Error("failed to load your profile, please sign in again")
		return redirect(loginTarget(g.loginPath, to.FullPath))
	}

	if r, ok := g.sessions.Role(); !ok || !r.Matches(to.Role) {
		g.notifier.Error("access not authorized")
		return redirect(g.homePath)
	}
	return allow()
}

// Authorize evaluates the navigation and applies a redirected decision
// through the Navigator. It returns true when the navigation may proceed.
func (g *Guard) Authorize(ctx context.Context, to Route) bool {
	d := g.Evaluate(ctx, to)
	if d.State == StateRedirected && g.nav != nil {
		g.nav.Redirect(d.Target)
	}
	return d.Allowed()
}
