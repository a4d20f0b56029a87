package tests

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/web"
	"github.com/semka95/devcamper/web/auth"
)

const keyID = "4754d86b-7a6d-4df5-9c65-224741361492"

// NewAuthenticator creates RS256 authenticator backed by a fresh key
func NewAuthenticator(t *testing.T) *auth.Authenticator {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	kf := auth.NewSimpleKeyLookupFunc(keyID, key.Public().(*rsa.PublicKey))
	a, err := auth.NewAuthenticator(key, keyID, "RS256", kf)
	require.NoError(t, err)
	return a
}

// NewEcho creates echo instance with application validator and error handler
func NewEcho(t *testing.T) (*echo.Echo, *web.AppValidator) {
	v, err := web.NewAppValidator()
	require.NoError(t, err)

	e := echo.New()
	e.Validator = v
	e.HTTPErrorHandler = web.NewHTTPErrorHandler(zap.NewNop())
	return e, v
}

// SetClaims stores claims the same way JWT middleware does
func SetClaims(c echo.Context, claims *auth.Claims) {
	c.Set("user", &jwt.Token{Claims: claims, Valid: true})
}

// BearerToken signs claims and returns Authorization header value
func BearerToken(t *testing.T, a *auth.Authenticator, claims *auth.Claims) string {
	tkn, err := a.GenerateToken(claims)
	require.NoError(t, err)
	return "Bearer " + tkn
}
