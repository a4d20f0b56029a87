package domain

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrNoAffected will throw if no rows were affected
	ErrNoAffected = errors.New("no rows were affected")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrAuthenticationFailure will throw if authentication goes wrong
	ErrAuthenticationFailure = errors.New("authentication failed")
	// ErrForbidden will throw if user tries to do something that he is not
	// authorized to do
	ErrForbidden = errors.New("attempted action is not allowed")
)

// ResponseError represent the response error struct
type ResponseError struct {
	Success bool                                   `json:"success"`
	Message string                                 `json:"message"`
	Fields  validator.ValidationErrorsTranslations `json:"fields,omitempty"`
}

// NewResponseError builds failure envelope from error, internal errors are
// not exposed to the client
func NewResponseError(status int, err error) ResponseError {
	if status >= http.StatusInternalServerError {
		return ResponseError{Message: http.StatusText(http.StatusInternalServerError)}
	}
	return ResponseError{Message: err.Error()}
}

// Response represent the success envelope
type Response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data"`
}

// NewResponse wraps data into success envelope
func NewResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// NewListResponse wraps list into success envelope with count
func NewListResponse[T any](list []T) Response {
	if list == nil {
		list = []T{}
	}
	n := len(list)
	return Response{Success: true, Count: &n, Data: list}
}

// TokenResponse represent the envelope returned by authentication endpoints
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// GetStatusCode gets http code from error
func GetStatusCode(err error, logger *zap.Logger) int {
	if errors.Is(err, ErrBadParamInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrAuthenticationFailure) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNoAffected) {
		return http.StatusNotFound
	}

	logger.Error("Server error: ", zap.Error(err))
	return http.StatusInternalServerError
}
