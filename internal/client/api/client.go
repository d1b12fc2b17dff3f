package api

import (
	"context"

	"github.com/dmitrijs2005/lexsearch/internal/client/models"
)

// Client defines the operations the backend exposes to this client.
// HTTPClient is the production implementation; tests substitute fakes.
type Client interface {
	// Register creates an account and returns the initial bearer token
	// together with the new user record. fullName may be empty.
	Register(ctx context.Context, email, password, fullName string) (*models.TokenResponse, error)

	// Login authenticates with email and password. The backend expects an
	// OAuth2 form body whose "username" field carries the email; that naming
	// is the server's schema, not a choice of this client.
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)

	// CurrentUser fetches a fresh copy of the authenticated user.
	CurrentUser(ctx context.Context, token string) (*models.User, error)

	// CheckSearchLimit reads the caller's quota snapshot.
	CheckSearchLimit(ctx context.Context, token string) (*models.SearchLimitResponse, error)

	// TrackSearch reports one executed search and returns updated counters.
	TrackSearch(ctx context.Context, token string, req models.TrackSearchRequest) (*models.TrackSearchResponse, error)

	// Health probes the auth service. A nil return means the backend is
	// reachable and reports itself healthy.
	Health(ctx context.Context) error

	// UpgradeUser switches the given account to the pro tier (admin surface).
	UpgradeUser(ctx context.Context, email string) (string, error)

	// PlatformStats returns aggregate user-base counters (admin surface).
	PlatformStats(ctx context.Context) (*models.PlatformStats, error)
}
