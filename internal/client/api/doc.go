// Package api is the HTTP binding for the lexsearch backend's
// authentication and usage-tracking endpoints.
//
// The package exposes a Client interface plus HTTPClient, its concrete
// implementation over net/http. Every operation performs exactly one
// request/response round trip; retries, token refresh and request queueing
// are deliberately left to callers.
//
// Error model
//
// Transport failures (dial errors, timeouts) wrap ErrUnavailable so callers
// can detect an unreachable backend with errors.Is. Any non-2xx response is
// normalized into *APIError: the message is taken from the body's "detail"
// field when the body parses, falls back to a status-code message when the
// body parses without a detail, and to a generic message when the body is
// not JSON at all. The normalization is identical across all operations.
package api
