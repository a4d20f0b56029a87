package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/web/auth"
)

// Claims extracts the claims set by the JWT middleware
func Claims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, fmt.Errorf("jwt token missing: %w", domain.ErrAuthenticationFailure)
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, fmt.Errorf("can't convert jwt.Claims to auth.Claims: %w", domain.ErrInternalServerError)
	}
	return claims, nil
}

// RespondError writes failure envelope for err
func RespondError(c echo.Context, err error, logger *zap.Logger) error {
	code := domain.GetStatusCode(err, logger)
	return c.JSON(code, domain.NewResponseError(code, err))
}

// RespondValidationError writes failure envelope with translated validator messages
func RespondValidationError(c echo.Context, err error, v *AppValidator) error {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusBadRequest, domain.ResponseError{
		Message: "validation error",
		Fields:  verr.Translate(v.Translator),
	})
}

// RespondBindError writes failure envelope for request body that can't be decoded
func RespondBindError(c echo.Context, err error) error {
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg = fmt.Sprint(he.Message)
	}
	return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: msg})
}

// NewHTTPErrorHandler renders errors that reached echo into failure envelope
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var body domain.ResponseError

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			body.Message = fmt.Sprint(he.Message)
			if code >= http.StatusInternalServerError {
				logger.Error("Server error: ", zap.Error(err))
				body.Message = http.StatusText(code)
			}
		} else {
			code = domain.GetStatusCode(err, logger)
			body = domain.NewResponseError(code, err)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, body)
		}
		if werr != nil {
			logger.Error("can't write error response", zap.Error(werr))
		}
	}
}
