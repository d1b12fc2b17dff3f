// Package session persists the auth token and the cached user record
// between runs.
//
// The storage medium is an injected Storage handle chosen once at
// construction: SQLite for normal runs, an in-memory map for tests, and a
// no-op handle when no writable location exists. All reads through a no-op
// handle report "absent" and writes do nothing, so the rest of the client
// works unchanged without persistent storage.
//
// A corrupted cached user is treated as no cached user: the store logs and
// swallows parse failures so a broken cache can never block a login.
package session
