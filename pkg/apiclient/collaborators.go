package apiclient

import "context"

// Notifier surfaces user-facing messages. Implementations render toasts,
// dialogs or terminal output; the pipeline only decides what to say.
type Notifier interface {
	// Error surfaces a failure message.
	Error(message string)
	// Warn surfaces a warning message.
	Warn(message string)
	// Confirm asks the user a yes/no question and blocks until answered or
	// the context is done. It is always called off the request path.
	Confirm(ctx context.Context, title, message string) bool
}

// Navigator performs client-side redirects.
type Navigator interface {
	Push(path string)
}

// TokenSource yields the current session credential. An empty string means
// unauthenticated and results in no credential being attached.
type TokenSource interface {
	Token() string
}

// SessionInvalidator tears down the authenticated session.
type SessionInvalidator interface {
	Logout(ctx context.Context) error
}

// NopNotifier discards every notification and answers no to every
// confirmation. It is the default when no Notifier is wired.
type NopNotifier struct{}

func (NopNotifier) Error(string) {}

func (NopNotifier) Warn(string) {}

func (NopNotifier) Confirm(context.Context, string, string) bool { return false }
