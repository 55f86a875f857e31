package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhkhub/clientkit/pkg/apiclient"
)

type recordingNotifier struct {
	mu       sync.Mutex
	errors   []string
	warns    []string
	confirms int
	answer   bool
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) Warn(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warns = append(n.warns, msg)
}

func (n *recordingNotifier) Confirm(context.Context, string, string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirms++
	return n.answer
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

func (n *recordingNotifier) confirmCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.confirms
}

type recordingNavigator struct {
	mu     sync.Mutex
	pushes []string
}

func (n *recordingNavigator) Push(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushes = append(n.pushes, path)
}

func (n *recordingNavigator) pushed() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.pushes...)
}

type staticTokens struct{ token string }

func (s staticTokens) Token() string { return s.token }

type recordingInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (r *recordingInvalidator) Logout(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return nil
}

func (r *recordingInvalidator) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func envelopeHandler(t *testing.T, status int, env any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(env))
	}
}

func newClient(t *testing.T, handler http.Handler, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, opts...)
}

func TestOutboundStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("attaches bearer token when present", func(t *testing.T) {
		t.Parallel()
		var gotAuth, gotReqID string
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotReqID = r.Header.Get("X-Request-ID")
			_ = json.NewEncoder(w).Encode(apiclient.Envelope{Code: 200})
		}))
		client.SetTokenSource(staticTokens{token: "t0ken"})

		require.NoError(t, client.Get(ctx, "/ping", nil))
		assert.Equal(t, "Bearer t0ken", gotAuth)
		assert.NotEmpty(t, gotReqID)
	})

	t.Run("attaches nothing when unauthenticated", func(t *testing.T) {
		t.Parallel()
		var gotAuth string
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(apiclient.Envelope{Code: 200})
		}))

		require.NoError(t, client.Get(ctx, "/ping", nil))
		assert.Empty(t, gotAuth)
	})
}

func TestEnvelopeClassification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("code 200 unwraps data", func(t *testing.T) {
		t.Parallel()
		client := newClient(t, envelopeHandler(t, http.StatusOK, map[string]any{
			"code": 200,
			"data": map[string]any{"id": 1},
		}))

		var out struct {
			ID int `json:"id"`
		}
		require.NoError(t, client.Get(ctx, "/things/1", &out))
		assert.Equal(t, 1, out.ID)
	})

	t.Run("non-200 code rejects with server message", func(t *testing.T) {
		t.Parallel()
		notifier := &recordingNotifier{}
		client := newClient(t, envelopeHandler(t, http.StatusOK, map[string]any{
			"code":    4001,
			"message": "order already taken",
		}), apiclient.WithNotifier(notifier))

		err := client.Post(ctx, "/orders", map[string]any{"gameId": 2}, nil)
		require.Error(t, err)
		assert.True(t, apiclient.IsBusinessError(err))
		assert.EqualError(t, err, "order already taken")
		assert.Equal(t, "order already taken", notifier.lastError())
	})

	t.Run("missing message falls back to generic", func(t *testing.T) {
		t.Parallel()
		notifier := &recordingNotifier{}
		client := newClient(t, envelopeHandler(t, http.StatusOK, map[string]any{"code": 500}),
			apiclient.WithNotifier(notifier))

		err := client.Get(ctx, "/things", nil)
		require.Error(t, err)
		assert.EqualError(t, err, "request failed")
	})

	t.Run("undecodable body", func(t *testing.T) {
		t.Parallel()
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not an envelope</html>"))
		}))

		err := client.Get(ctx, "/things", nil)
		assert.ErrorIs(t, err, apiclient.ErrInvalidEnvelope)
	})
}

func TestEnvelopeAuthExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects immediately, tears down after confirmation", func(t *testing.T) {
		t.Parallel()
		notifier := &recordingNotifier{answer: true}
		nav := &recordingNavigator{}
		inv := &recordingInvalidator{}
		client := newClient(t, envelopeHandler(t, http.StatusOK, map[string]any{
			"code":    401,
			"message": "expired",
		}), apiclient.WithNotifier(notifier), apiclient.WithNavigator(nav))
		client.SetSessionInvalidator(inv)

		err := client.Get(ctx, "/users/info", nil)
		require.Error(t, err)
		assert.True(t, apiclient.IsAuthExpired(err))
		assert.EqualError(t, err, "expired")

		assert.Eventually(t, func() bool {
			return inv.count() == 1 && len(nav.pushed()) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, []string{"/login"}, nav.pushed())
		assert.Equal(t, 1, notifier.confirmCount())
	})

	t.Run("declined confirmation keeps the session", func(t *testing.T) {
		t.Parallel()
		notifier := &recordingNotifier{answer: false}
		nav := &recordingNavigator{}
		inv := &recordingInvalidator{}
		client := newClient(t, envelopeHandler(t, http.StatusOK, map[string]any{"code": 401}),
			apiclient.WithNotifier(notifier), apiclient.WithNavigator(nav))
		client.SetSessionInvalidator(inv)

		err := client.Get(ctx, "/users/info", nil)
		require.Error(t, err)

		assert.Eventually(t, func() bool { return notifier.confirmCount() == 1 },
			time.Second, 5*time.Millisecond)
		assert.Zero(t, inv.count())
		assert.Empty(t, nav.pushed())
	})
}

func TestTransportClassification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("fixed categories", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			status int
			want   string
		}{
			{http.StatusBadRequest, "bad request parameters"},
			{http.StatusForbidden, "access denied"},
			{http.StatusNotFound, "requested resource does not exist"},
			{http.StatusInternalServerError, "internal server error"},
			{http.StatusBadGateway, "connection error 502"},
		}

		for _, tt := range tests {
			notifier := &recordingNotifier{}
			client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}), apiclient.WithNotifier(notifier))

			err := client.Get(ctx, "/things", nil)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
			assert.Equal(t, tt.want, notifier.lastError())

			var reqErr *apiclient.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.status, reqErr.Status)
		}
	})

	t.Run("401 tears down immediately without confirmation", func(t *testing.T) {
		t.Parallel()
		notifier := &recordingNotifier{answer: true}
		nav := &recordingNavigator{}
		inv := &recordingInvalidator{}
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}), apiclient.WithNotifier(notifier), apiclient.WithNavigator(nav))
		client.SetSessionInvalidator(inv)

		err := client.Get(ctx, "/users/info", nil)
		require.Error(t, err)
		assert.True(t, apiclient.IsAuthExpired(err))

		// Teardown happened on the request path, no prompt involved.
		assert.Equal(t, 1, inv.count())
		assert.Equal(t, []string{"/login"}, nav.pushed())
		assert.Zero(t, notifier.confirmCount())
	})
}

func TestNoResponseFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notifier := &recordingNotifier{}
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	client := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: time.Second},
		apiclient.WithNotifier(notifier))

	err := client.Get(ctx, "/ping", nil)
	require.Error(t, err)
	assert.True(t, apiclient.IsNetworkError(err))
	assert.EqualError(t, err, "network connection failed")
	assert.Equal(t, "network connection failed", notifier.lastError())
}
