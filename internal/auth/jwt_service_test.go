package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "recipebook/internal/errors"
)

const testSecret = "test-secret"

// mockRevocationList is a mock implementation of RevocationList.
type mockRevocationList struct {
	mock.Mock
}

func (m *mockRevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *mockRevocationList) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func signToken(t *testing.T, secret string, userID uint, expiry time.Time) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestTokenService_IssueDecodeRoundTrip(t *testing.T) {
	revoked := new(mockRevocationList)
	revoked.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil)
	service := NewTokenService(testSecret, revoked)

	token, err := service.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := service.Decode(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	revoked.AssertExpectations(t)
}

func TestTokenService_DecodeExpired(t *testing.T) {
	revoked := new(mockRevocationList)
	service := NewTokenService(testSecret, revoked)

	token := signToken(t, testSecret, 42, time.Now().Add(-time.Hour))

	_, err := service.Decode(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	// the revocation list is never consulted for a token that fails expiry
	revoked.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
}

func TestTokenService_DecodeTampered(t *testing.T) {
	revoked := new(mockRevocationList)
	service := NewTokenService(testSecret, revoked)

	token := signToken(t, "some-other-secret", 42, time.Now().Add(time.Hour))

	_, err := service.Decode(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrTokenMalformed)
	// forged tokens never reach the revocation list
	revoked.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
}

func TestTokenService_DecodeGarbage(t *testing.T) {
	revoked := new(mockRevocationList)
	service := NewTokenService(testSecret, revoked)

	_, err := service.Decode(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenMalformed)
}

func TestTokenService_DecodeRevoked(t *testing.T) {
	revoked := new(mockRevocationList)
	service := NewTokenService(testSecret, revoked)

	token, err := service.Issue(42)
	assert.NoError(t, err)

	// still within its embedded expiry, but on the denylist
	revoked.On("IsRevoked", mock.Anything, token).Return(true, nil)

	_, err = service.Decode(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	revoked.AssertExpectations(t)
}

func TestTokenService_Revoke(t *testing.T) {
	revoked := new(mockRevocationList)
	service := NewTokenService(testSecret, revoked)

	token, err := service.Issue(42)
	assert.NoError(t, err)

	revoked.On("Revoke", mock.Anything, token).Return(nil)
	assert.NoError(t, service.Revoke(context.Background(), token))
	revoked.AssertExpectations(t)
}

func TestTokenService_ResetTokenIsShortLived(t *testing.T) {
	revoked := new(mockRevocationList)
	revoked.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil)
	service := NewTokenService(testSecret, revoked)

	token, err := service.IssueResetToken(42)
	assert.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(*Claims)
	assert.WithinDuration(t, time.Now().Add(ResetTokenExpiry), claims.ExpiresAt.Time, time.Minute)

	userID, err := service.Decode(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}
