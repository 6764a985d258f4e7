package auth

import (
	"context"

	"recipebook/internal/cache"
	"recipebook/internal/repository"
)

const revokedTokenKeyPrefix = "revoked_token:"

// TokenStore is the RevocationList backed by MySQL with a Redis fast path.
// The database is the source of truth; the cache marker only saves a query
// for tokens already known to be revoked.
type TokenStore struct {
	repo  repository.RevokedTokenRepository
	cache *cache.Client
}

// Ensure TokenStore implements RevocationList
var _ RevocationList = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(repo repository.RevokedTokenRepository, cache *cache.Client) *TokenStore {
	return &TokenStore{repo: repo, cache: cache}
}

// IsRevoked reports whether the token is on the revocation list.
func (s *TokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	if s.cache.Exists(ctx, revokedTokenKeyPrefix+token) {
		return true, nil
	}

	revoked, err := s.repo.Exists(ctx, token)
	if err != nil {
		return false, err
	}
	if revoked {
		_ = s.cache.Set(ctx, revokedTokenKeyPrefix+token, []byte("1"), AccessTokenExpiry)
	}
	return revoked, nil
}

// Revoke appends the token to the revocation list. Revoking a token twice is
// not an error.
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.repo.Create(ctx, token); err != nil {
		return err
	}
	_ = s.cache.Set(ctx, revokedTokenKeyPrefix+token, []byte("1"), AccessTokenExpiry)
	return nil
}
