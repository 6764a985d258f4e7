package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "recipebook/internal/errors"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 30 * 24 * time.Hour
	// ResetTokenExpiry is the duration for which password-reset tokens are valid.
	ResetTokenExpiry = 30 * time.Minute
)

// Claims represents JWT claims carrying the authenticated user identity.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// RevocationList is consulted on every decode and records logged-out tokens.
type RevocationList interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

// TokenService issues and validates HMAC-signed bearer tokens. The signing
// secret is set once at construction and never mutated.
type TokenService struct {
	secret  []byte
	revoked RevocationList
}

// NewTokenService creates a token service with the given secret and revocation list.
func NewTokenService(secret string, revoked RevocationList) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		revoked: revoked,
	}
}

// Issue generates a signed access token embedding the user ID, valid for 30 days.
func (s *TokenService) Issue(userID uint) (string, error) {
	return s.sign(userID, AccessTokenExpiry)
}

// IssueResetToken generates a short-lived token for password-reset links.
func (s *TokenService) IssueResetToken(userID uint) (string, error) {
	return s.sign(userID, ResetTokenExpiry)
}

func (s *TokenService) sign(userID uint, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Decode verifies a token and returns the embedded user ID. The revocation
// list is consulted only after the signature and expiry checks pass, so forged
// tokens never reach the store.
func (s *TokenService) Decode(ctx context.Context, tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperrors.ErrTokenExpired
		}
		return 0, apperrors.ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, apperrors.ErrTokenMalformed
	}

	revoked, err := s.revoked.IsRevoked(ctx, tokenString)
	if err != nil {
		return 0, err
	}
	if revoked {
		return 0, apperrors.ErrTokenRevoked
	}

	return claims.UserID, nil
}

// Revoke adds the raw token string to the revocation list.
func (s *TokenService) Revoke(ctx context.Context, tokenString string) error {
	return s.revoked.Revoke(ctx, tokenString)
}
