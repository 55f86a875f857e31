// Package clientkit assembles an authenticated client for the platform API:
// a request pipeline that attaches credentials and classifies failures, a
// session store owning the credential and identity lifecycle, and a route
// guard authorizing navigation against that session.
//
// The three parts are deliberately coupled: the guard reads the session, the
// session is mutated by login flows and by the pipeline's reaction to
// expired credentials, and the pipeline's classification decides when a
// re-authentication is forced. New wires them in the right order and closes
// the pipeline/session cycle, replacing any need for shared global state.
//
//	kit := clientkit.New(clientkit.Config{API: apiCfg},
//		clientkit.WithCredentialStore(session.NewFileCredentialStore(path)),
//		clientkit.WithNotifier(ui),
//		clientkit.WithNavigator(router),
//	)
//	kit.Init(ctx) // restore a persisted session, if any
//
// Each part remains individually constructible for tests and for callers
// that need only a slice of the toolkit; see pkg/apiclient, pkg/session and
// pkg/guard.
package clientkit
