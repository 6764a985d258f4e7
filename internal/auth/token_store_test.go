package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockRevokedTokenRepository is a mock implementation of repository.RevokedTokenRepository.
type mockRevokedTokenRepository struct {
	mock.Mock
}

func (m *mockRevokedTokenRepository) Create(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockRevokedTokenRepository) Exists(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func TestTokenStore_IsRevoked(t *testing.T) {
	tests := []struct {
		name     string
		stored   bool
		expected bool
	}{
		{name: "token on the denylist", stored: true, expected: true},
		{name: "unknown token", stored: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRevokedTokenRepository)
			repo.On("Exists", mock.Anything, "some-token").Return(tt.stored, nil)

			// nil cache client behaves like an always-empty cache
			store := NewTokenStore(repo, nil)

			revoked, err := store.IsRevoked(context.Background(), "some-token")
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, revoked)
			repo.AssertExpectations(t)
		})
	}
}

func TestTokenStore_RevokeIsIdempotent(t *testing.T) {
	repo := new(mockRevokedTokenRepository)
	// the repository swallows duplicate-key errors, so a second revoke
	// succeeds the same way the first did
	repo.On("Create", mock.Anything, "some-token").Return(nil).Twice()

	store := NewTokenStore(repo, nil)

	assert.NoError(t, store.Revoke(context.Background(), "some-token"))
	assert.NoError(t, store.Revoke(context.Background(), "some-token"))
	repo.AssertExpectations(t)
}
