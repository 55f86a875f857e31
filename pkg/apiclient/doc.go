// Package apiclient wraps every outbound API call with uniform credential
// attachment and uniform failure classification.
//
// The client is a thin layer over resty with two stages around the actual
// network call:
//
//   - outbound: the current session token (if any) is attached as a bearer
//     credential, together with a generated X-Request-ID header;
//   - inbound: the response is parsed as the platform's uniform Envelope
//     ({code, message, data}) and classified. A transport-level HTTP success
//     does not imply business success; code is always checked.
//
// Failure classification follows a fixed taxonomy (see errors.go). An
// envelope code of 401 means the credential is invalid or expired: the user
// is asked, asynchronously, to sign in again, and on acknowledgment the
// session is torn down and navigation moves to the login route. A
// transport-level 401 tears the session down immediately, without a
// confirmation prompt. This asymmetry mirrors the platform's UX and is
// intentional.
//
// The pipeline never retries and never resolves a failed call successfully.
// Side effects are confined to the Notifier, the SessionInvalidator and the
// Navigator collaborators.
//
// The client and the session store reference each other (the store performs
// its calls through the client, the client reads the store's token), so the
// session side is attached after construction:
//
//	client := apiclient.New(cfg, apiclient.WithNotifier(n), apiclient.WithNavigator(nav))
//	store := session.NewStore(creds, account.New(client))
//	client.SetTokenSource(store)
//	client.SetSessionInvalidator(store)
package apiclient
