package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/lexsearch/internal/client/models"
	"github.com/dmitrijs2005/lexsearch/internal/logging"
)

// Fixed storage keys. The store owns both values exclusively.
const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// Store is the typed session layer over a Storage handle. Reads degrade to
// "absent" on storage errors and on corrupted values; only writes surface
// errors to the caller.
type Store struct {
	storage Storage
	log     logging.Logger
}

// NewStore builds a Store over the given handle. A nil storage selects
// NopStorage, which makes the store safe to use when no persistent
// location exists.
func NewStore(storage Storage, log logging.Logger) *Store {
	if storage == nil {
		storage = NopStorage{}
	}
	return &Store{storage: storage, log: log.With("component", "session")}
}

// Token returns the persisted bearer token, if any.
func (s *Store) Token(ctx context.Context) (string, bool) {
	v, err := s.storage.Get(ctx, tokenKey)
	if err != nil {
		s.log.Warn(ctx, "session read failed", "key", tokenKey, "error", err)
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	if err := s.storage.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	return nil
}

// RemoveToken deletes the token together with the cached user: a user
// record without its token is useless and must not outlive it.
func (s *Store) RemoveToken(ctx context.Context) error {
	return s.storage.Delete(ctx, tokenKey, userKey)
}

// User returns the cached user record, if any. A value that fails to parse
// is discarded as if absent; a corrupted cache must never block the auth
// flow.
func (s *Store) User(ctx context.Context) (*models.User, bool) {
	v, err := s.storage.Get(ctx, userKey)
	if err != nil {
		s.log.Warn(ctx, "session read failed", "key", userKey, "error", err)
		return nil, false
	}
	if len(v) == 0 {
		return nil, false
	}

	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		s.log.Warn(ctx, "discarding unreadable cached user", "error", err)
		return nil, false
	}
	return &u, true
}

func (s *Store) SetUser(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if err := s.storage.Set(ctx, userKey, data); err != nil {
		return fmt.Errorf("persisting user: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is present. Purely local, no
// network involved; the token may still be expired or revoked server-side.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

// Logout clears both stored values.
func (s *Store) Logout(ctx context.Context) error {
	return s.storage.Delete(ctx, tokenKey, userKey)
}
