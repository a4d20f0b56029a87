package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// TokenCookie is the cookie name the token is also accepted from
const TokenCookie = "token"

// ErrUnknownSubject is returned by RoleLookupFunc when the token subject no
// longer exists
var ErrUnknownSubject = errors.New("token subject does not exist")

// RoleLookupFunc returns the current roles of the token subject
type RoleLookupFunc func(ctx context.Context, subject string) ([]string, error)

// KeyLookupFunc is used to map a JWT key id (kid) to the corresponding public key.
// It is a requirement for creating an Authenticator.
//
// * Private keys should be rotated. During the transition period, tokens
// signed with the old and new keys can coexist by looking up the correct
// public key by key id (kid).
//
// * Key-id-to-public-key resolution is usually accomplished via a public JWKS
// endpoint. See https://auth0.com/docs/jwks for more details.
type KeyLookupFunc func(kid string) (*rsa.PublicKey, error)

// NewSimpleKeyLookupFunc is a simple implementation of KeyFunc that only ever
// supports one key. This is easy for development but in production should be
// replaced with a caching layer that calls a JWKS endpoint.
func NewSimpleKeyLookupFunc(activeKID string, publicKey *rsa.PublicKey) KeyLookupFunc {
	f := func(kid string) (*rsa.PublicKey, error) {
		if activeKID != kid {
			return nil, fmt.Errorf("unrecognized kid %q", kid)
		}
		return publicKey, nil
	}

	return f
}

// Authenticator is used to authenticate clients. It can generate a token for a
// set of user claims and recreate the claims by parsing the token.
type Authenticator struct {
	privateKey *rsa.PrivateKey
	keyID      string
	algorithm  string
	parser     *jwt.Parser
	keyFunc    jwt.Keyfunc
	roleLookup RoleLookupFunc
	JWTConfig  echojwt.Config
}

// NewAuthenticator creates an *Authenticator for use. It will error if:
// - The private key is nil.
// - The public key func is nil.
// - The key ID is blank.
// - The specified algorithm is unsupported.
func NewAuthenticator(privateKey *rsa.PrivateKey, keyID, algorithm string, publicKeyLookupFunc KeyLookupFunc) (*Authenticator, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if publicKeyLookupFunc == nil {
		return nil, errors.New("public key function cannot be nil")
	}
	if keyID == "" {
		return nil, errors.New("keyID cannot be blank")
	}
	if jwt.GetSigningMethod(algorithm) == nil {
		return nil, fmt.Errorf("unknown algorithm %v", algorithm)
	}

	// Create the token parser to use. The algorithm used to sign the JWT must be
	// validated to avoid a critical vulnerability:
	// https://auth0.com/blog/critical-vulnerabilities-in-json-web-token-libraries/
	a := &Authenticator{
		privateKey: privateKey,
		keyID:      keyID,
		algorithm:  algorithm,
		parser:     jwt.NewParser(jwt.WithValidMethods([]string{algorithm})),
	}

	a.keyFunc = func(t *jwt.Token) (interface{}, error) {
		kid, ok := t.Header["kid"]
		if !ok {
			return nil, errors.New("missing key id (kid) in token header")
		}
		kidID, ok := kid.(string)
		if !ok {
			return nil, errors.New("user token key id (kid) must be string")
		}

		return publicKeyLookupFunc(kidID)
	}

	a.JWTConfig = echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ,cookie:" + TokenCookie,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			tkn, err := a.parser.ParseWithClaims(auth, new(Claims), a.keyFunc)
			if err != nil {
				return nil, err
			}
			if !tkn.Valid {
				return nil, errors.New("invalid token")
			}
			return tkn, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized to access this route").SetInternal(err)
		},
	}

	return a, nil
}

// SetRoleLookup makes Middleware replace token roles with the ones returned
// by f on every request. It must be called before routes are registered.
func (a *Authenticator) SetRoleLookup(f RoleLookupFunc) {
	a.roleLookup = f
}

// Middleware validates the request token. With a role lookup set, requests of
// subjects that no longer exist are rejected and the claims carry the current
// roles instead of the ones issued at login.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	jwtMiddl := echojwt.WithConfig(a.JWTConfig)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddl(func(c echo.Context) error {
			if a.roleLookup == nil {
				return next(c)
			}

			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized to access this route")
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, "can't convert jwt.Claims to auth.Claims")
			}

			roles, err := a.roleLookup(c.Request().Context(), claims.Subject)
			if errors.Is(err, ErrUnknownSubject) {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized to access this route").SetInternal(err)
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
			}
			claims.Roles = roles

			return next(c)
		})
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func (a *Authenticator) GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(a.algorithm)

	tkn := jwt.NewWithClaims(method, claims)
	tkn.Header["kid"] = a.keyID

	str, err := tkn.SignedString(a.privateKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return str, nil
}

// ParseClaims recreates the Claims that were used to generate a token. It
// verifies that the token was signed using our key.
func (a *Authenticator) ParseClaims(tknStr string) (*Claims, error) {
	claims := new(Claims)
	tkn, err := a.parser.ParseWithClaims(tknStr, claims, a.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
