// Package cli provides the interactive lexsearch command-line client.
//
// It wires configuration, the session store, the HTTP API client and an
// interactive loop that keeps working while the backend is unreachable.
// A background watcher pings the server and flips the app between online
// and offline mode; the prompt shows the current account, the mode and
// whether the stored token has expired.
//
// Key commands:
//   - register / login / logout
//   - whoami (refreshes the profile, falls back to the cached copy offline)
//   - limit / track (search quota)
//   - stats / upgrade (admin surface)
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
