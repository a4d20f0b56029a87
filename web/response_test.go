package web_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/web"
	"github.com/semka95/devcamper/web/auth"
)

func TestHTTPErrorHandler(t *testing.T) {
	h := web.NewHTTPErrorHandler(zap.NewNop())

	cases := []struct {
		description string
		err         error
		code        int
		message     string
	}{
		{"echo error", echo.NewHTTPError(http.StatusForbidden, "you are not authorized for that action"), http.StatusForbidden, "you are not authorized for that action"},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"domain error", fmt.Errorf("course was not found: %w", domain.ErrNotFound), http.StatusNotFound, "course was not found: your requested item is not found"},
		{"internal error is hidden", errors.New("connection refused"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(echo.GET, "/", nil), rec)

			h(tc.err, c)

			body := new(domain.ResponseError)
			require.NoError(t, json.NewDecoder(rec.Body).Decode(body))
			assert.Equal(t, tc.code, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestClaims(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(echo.GET, "/", nil), httptest.NewRecorder())

	_, err := web.Claims(c)
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailure)

	claims := auth.NewClaims("id", []string{auth.RoleUser}, time.Now(), time.Hour)
	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))

	got, err := web.Claims(c)
	require.NoError(t, err)
	assert.Equal(t, claims, got)
}
