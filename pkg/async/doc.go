// Package async provides small generic helpers for running computations in
// the background and waiting for their completion.
//
// Async starts the supplied function in its own goroutine and returns a
// *Future that can be waited on with Await or AwaitWithTimeout, or polled
// with IsComplete. Observe runs a task in fire-and-forget fashion: its error
// is surfaced to a callback rather than returned, so a failing task can
// never escalate into its caller.
//
// All helpers are context-aware: if the provided context is cancelled before
// the computation starts, the Future completes with the context error.
package async
