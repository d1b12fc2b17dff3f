// Package services contains application services for the lexsearch client.
// This file defines the authentication service: register, login, session
// bookkeeping, quota reads and usage reporting.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lexsearch/internal/client/api"
	"github.com/dmitrijs2005/lexsearch/internal/client/models"
	"github.com/dmitrijs2005/lexsearch/internal/client/session"
)

// ErrNotAuthenticated is returned by operations that need a bearer token
// when the session store holds none.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthService defines authentication and usage operations for the CLI.
//
// Contract:
//   - Register/Login: authenticate against the server and persist the
//     returned token and user in the session store.
//   - CurrentUser: fetch a fresh user record and re-cache it.
//   - CheckSearchLimit/TrackSearch: quota operations on the current session.
//   - Logout: clear the persisted session.
//   - Ping: check server liveness.
//
// All methods honor context cancellation/timeouts via the underlying client.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	CheckSearchLimit(ctx context.Context) (*models.SearchLimitResponse, error)
	TrackSearch(ctx context.Context, query, collection string, resultCount int) (*models.TrackSearchResponse, error)
	Ping(ctx context.Context) error
	UpgradeUser(ctx context.Context, email string) (string, error)
	PlatformStats(ctx context.Context) (*models.PlatformStats, error)
	IsAuthenticated(ctx context.Context) bool
	CachedUser(ctx context.Context) (*models.User, bool)
	Token(ctx context.Context) (string, bool)
}

// authService is the concrete AuthService backed by a remote Client and a
// local session store.
type authService struct {
	client api.Client
	store  *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	tr, err := a.client.Register(ctx, email, password, fullName)
	if err != nil {
		return nil, err
	}

	if err := a.persistSession(ctx, tr); err != nil {
		return nil, err
	}
	return &tr.User, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	tr, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.persistSession(ctx, tr); err != nil {
		return nil, err
	}
	return &tr.User, nil
}

// persistSession writes the token first, then the user: a stored user
// without a token would be dropped on the next RemoveToken anyway.
func (a *authService) persistSession(ctx context.Context, tr *models.TokenResponse) error {
	if err := a.store.SetToken(ctx, tr.AccessToken); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	if err := a.store.SetUser(ctx, &tr.User); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Logout(ctx)
}

// CurrentUser refreshes the user record from the server and replaces the
// cached copy wholesale.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	token, ok := a.store.Token(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	u, err := a.client.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := a.store.SetUser(ctx, u); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return u, nil
}

func (a *authService) CheckSearchLimit(ctx context.Context) (*models.SearchLimitResponse, error) {
	token, ok := a.store.Token(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return a.client.CheckSearchLimit(ctx, token)
}

func (a *authService) TrackSearch(ctx context.Context, query, collection string, resultCount int) (*models.TrackSearchResponse, error) {
	token, ok := a.store.Token(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return a.client.TrackSearch(ctx, token, models.TrackSearchRequest{
		Query:       query,
		Collection:  collection,
		ResultCount: resultCount,
	})
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Health(ctx)
}

// UpgradeUser switches the given account to the pro tier. The server
// decides who is allowed to do this.
func (a *authService) UpgradeUser(ctx context.Context, email string) (string, error) {
	return a.client.UpgradeUser(ctx, email)
}

func (a *authService) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	return a.client.PlatformStats(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.store.IsAuthenticated(ctx)
}

func (a *authService) CachedUser(ctx context.Context) (*models.User, bool) {
	return a.store.User(ctx)
}

func (a *authService) Token(ctx context.Context) (string, bool) {
	return a.store.Token(ctx)
}
