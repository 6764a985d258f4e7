package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "recipebook/internal/errors"
)

const (
	identityContextKey = "user"
	rawTokenContextKey = "access_token"
)

// Middleware returns the bearer-token guard applied to every protected route.
// It extracts the token from the Authorization header, validates it through
// the token service (signature, expiry, revocation) and stores the resolved
// user ID in the request context. Handlers learn the caller's identity only
// through UserID; client-supplied IDs are never trusted.
func Middleware(tokens *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  identityContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			userID, err := tokens.Decode(c.Request().Context(), auth)
			if err != nil {
				return nil, err
			}
			c.Set(rawTokenContextKey, auth)
			return userID, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			msg := apperrors.ErrTokenMissing.Error()
			for _, decodeErr := range []error{
				apperrors.ErrTokenMalformed,
				apperrors.ErrTokenExpired,
				apperrors.ErrTokenRevoked,
			} {
				if errors.Is(err, decodeErr) {
					msg = decodeErr.Error()
					break
				}
			}
			return echo.NewHTTPError(http.StatusUnauthorized, msg)
		},
	})
}

// UserID returns the authenticated caller's ID bound by the guard.
func UserID(c echo.Context) uint {
	id, _ := c.Get(identityContextKey).(uint)
	return id
}

// RawToken returns the bearer token the guard validated for this request.
func RawToken(c echo.Context) string {
	token, _ := c.Get(rawTokenContextKey).(string)
	return token
}
