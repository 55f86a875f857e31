// Package guard authorizes route transitions against the current session.
//
// Every navigation attempt starts in the evaluating state and ends in
// exactly one of two terminal states: allowed (the navigation proceeds) or
// redirected (the navigation is replaced by the decision's target). A denied
// navigation is never retried by the guard.
//
// The evaluation order is fixed:
//
//  1. Routes that do not require authentication are allowed, except the
//     login/registration routes, which redirect an already signed-in user
//     home.
//  2. An unauthenticated session on a protected route redirects to login,
//     carrying the originally intended path in the `redirect` query
//     parameter.
//  3. A protected route without a role requirement is allowed.
//  4. A role requirement is compared case-insensitively against the
//     session's resolved role. When the identity has not been resolved yet,
//     the guard suspends the navigation on a FetchUserInfo call and
//     re-compares; a failed fetch redirects to login, a mismatch redirects
//     home.
//
// The guard holds no state across invocations beyond what it reads from the
// session store, so it is re-entered safely for every navigation.
package guard
