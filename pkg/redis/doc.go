// Package redis provides connection helpers for redis-backed storage.
//
// Connect dials the server described by Config with bounded retries and
// returns a ready *redis.Client. Healthcheck wraps a client into a readiness
// probe function.
package redis
