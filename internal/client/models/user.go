package models

// User is the account record returned by the backend. The client treats it
// as immutable: a fresh copy replaces the cached one on every refresh.
//
// Timestamps are kept as the backend's RFC 3339 strings; the client never
// does arithmetic on them.
type User struct {
	ID                int    `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"full_name,omitempty"`
	Tier              string `json:"tier"`
	SearchCount       int    `json:"search_count"`
	SearchesRemaining int    `json:"searches_remaining"`
	IsActive          bool   `json:"is_active"`
	CreatedAt         string `json:"created_at"`
	LastLogin         string `json:"last_login,omitempty"`
}

// TokenResponse is what register and login return: a bearer token plus the
// user it belongs to.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
