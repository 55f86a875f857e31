package clientkit

import (
	"context"
	"log/slog"

	"github.com/zhkhub/clientkit/modules/account"
	"github.com/zhkhub/clientkit/modules/payment"
	"github.com/zhkhub/clientkit/pkg/apiclient"
	"github.com/zhkhub/clientkit/pkg/guard"
	"github.com/zhkhub/clientkit/pkg/logger"
	"github.com/zhkhub/clientkit/pkg/session"
)

// Notifier is the combined user-facing message sink consumed by the
// pipeline and the guard.
type Notifier interface {
	Error(message string)
	Warn(message string)
	Confirm(ctx context.Context, title, message string) bool
}

// Navigator is the combined navigation surface: Push for the pipeline's
// forced re-authentication, Redirect for the guard's replaced navigations.
type Navigator interface {
	Push(path string)
	Redirect(target string)
}

// Config aggregates the settings of the assembled toolkit.
type Config struct {
	API apiclient.Config
}

// Kit is the assembled toolkit.
type Kit struct {
	Client   *apiclient.Client
	Sessions *session.Store
	Guard    *guard.Guard
	Account  *account.Service
	Payments *payment.Service
}

type options struct {
	log       *slog.Logger
	notifier  Notifier
	navigator Navigator
	creds     session.CredentialStore
	login     string
	register  string
	home      string
}

// Option configures the assembled toolkit.
type Option func(*options)

// WithLogger sets the structured logger shared by all parts.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithNotifier sets the user-facing message sink.
func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithNavigator sets the navigation surface.
func WithNavigator(nav Navigator) Option {
	return func(o *options) { o.navigator = nav }
}

// WithCredentialStore sets the token persistence. Defaults to an in-memory
// store, which does not survive restarts.
func WithCredentialStore(creds session.CredentialStore) Option {
	return func(o *options) { o.creds = creds }
}

// WithPaths overrides the login, register and home routes used by the guard
// and by the pipeline's expiry redirect.
func WithPaths(login, register, home string) Option {
	return func(o *options) {
		o.login, o.register, o.home = login, register, home
	}
}

// New assembles the toolkit: credential persistence, session store, request
// pipeline, route guard and the endpoint services, wired in dependency
// order. The session store performs its calls through the client while the
// client reads the store's token, so the session side is attached to the
// client after both exist.
func New(cfg Config, opts ...Option) *Kit {
	o := &options{
		log:   logger.New(),
		creds: session.NewMemoryCredentialStore(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.login != "" {
		cfg.API.LoginPath = o.login
	}

	clientOpts := []apiclient.Option{apiclient.WithLogger(o.log)}
	if o.notifier != nil {
		clientOpts = append(clientOpts, apiclient.WithNotifier(o.notifier))
	}
	if o.navigator != nil {
		clientOpts = append(clientOpts, apiclient.WithNavigator(o.navigator))
	}
	client := apiclient.New(cfg.API, clientOpts...)

	accounts := account.New(client)
	store := session.NewStore(o.creds, accounts, session.WithLogger(o.log))
	client.SetTokenSource(store)
	client.SetSessionInvalidator(store)

	guardOpts := []guard.Option{
		guard.WithLogger(o.log),
		guard.WithPaths(o.login, o.register, o.home),
	}
	if o.notifier != nil {
		guardOpts = append(guardOpts, guard.WithNotifier(o.notifier))
	}
	if o.navigator != nil {
		guardOpts = append(guardOpts, guard.WithNavigator(o.navigator))
	}

	return &Kit{
		Client:   client,
		Sessions: store,
		Guard:    guard.New(store, guardOpts...),
		Account:  accounts,
		Payments: payment.New(client),
	}
}

// Init restores a persisted session, if any. Identity resolution runs in
// the background; see session.Store.Init.
func (k *Kit) Init(ctx context.Context) {
	k.Sessions.Init(ctx)
}
