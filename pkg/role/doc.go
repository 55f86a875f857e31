// Package role models user roles as an open set of free-form strings with
// case-insensitive comparison semantics.
//
// Roles are normalized (lower-cased) at construction time, which makes every
// comparison total and obvious: "Admin", "ADMIN" and "admin" are the same
// role. New roles require no code change; there is deliberately no closed
// enumeration.
//
// # Usage
//
//	r := role.New("Admin")
//	r.Matches("admin") // true
package role
