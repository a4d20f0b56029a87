package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	authnHttp "github.com/semka95/devcamper/authn/delivery/http"
	"github.com/semka95/devcamper/authn/mock"
	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/tests"
	"github.com/semka95/devcamper/web/auth"
)

func tokenCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == auth.TokenCookie {
			return ck
		}
	}
	t.Fatal("token cookie is not set")
	return nil
}

func TestAuthHTTP(t *testing.T) {
	tUser := tests.NewUser()
	claims := tests.NewClaims(tUser.ID, auth.RoleUser)
	authenticator := tests.NewAuthenticator(t)

	controller := gomock.NewController(t)
	defer controller.Finish()
	uc := mock.NewMockAuthUsecase(controller)

	tracer := sdktrace.NewTracerProvider().Tracer("")
	e, v := tests.NewEcho(t)
	handler := authnHttp.NewAuthHandler(uc, authenticator, v, authnHttp.CookieConfig{TTL: 30 * 24 * time.Hour, Secure: true}, zap.NewNop(), tracer)

	checkToken := func(t *testing.T, rec *httptest.ResponseRecorder) {
		body := new(domain.TokenResponse)
		err := json.NewDecoder(rec.Body).Decode(body)
		require.NoError(t, err)
		assert.True(t, body.Success)
		assert.Equal(t, http.StatusOK, rec.Code)

		parsed, err := authenticator.ParseClaims(body.Token)
		require.NoError(t, err)
		assert.Equal(t, claims.Subject, parsed.Subject)

		ck := tokenCookie(t, rec)
		assert.Equal(t, body.Token, ck.Value)
		assert.True(t, ck.HttpOnly)
		assert.True(t, ck.Secure)
		assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), ck.Expires, time.Minute)
	}

	// Test AuthHandler.Register
	tRegister := domain.RegisterUser{Name: tUser.Name, Email: tUser.Email, Password: "password", Role: auth.RolePublisher}
	registerB, err := json.Marshal(tRegister)
	require.NoError(t, err)
	tRegisterAdmin := tRegister
	tRegisterAdmin.Role = auth.RoleAdmin
	registerAdminB, err := json.Marshal(tRegisterAdmin)
	require.NoError(t, err)

	casesRegister := []struct {
		description   string
		mockCalls     func(muc *mock.MockAuthUsecase)
		reqBody       []byte
		checkResponse func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			description: "Register success",
			mockCalls: func(muc *mock.MockAuthUsecase) {
				muc.EXPECT().Register(gomock.Any(), tRegister, "http://devcamper.io").Return(claims, nil)
			},
			reqBody:       registerB,
			checkResponse: checkToken,
		},
		{
			description: "Register email already taken",
			mockCalls: func(muc *mock.MockAuthUsecase) {
				muc.EXPECT().Register(gomock.Any(), tRegister, "http://devcamper.io").Return(nil, domain.ErrConflict)
			},
			reqBody: registerB,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				assert.Empty(t, rec.Result().Cookies())
			},
		},
		{
			description: "Register admin role is not allowed",
			mockCalls:   func(muc *mock.MockAuthUsecase) {},
			reqBody:     registerAdminB,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := new(domain.ResponseError)
				err := json.NewDecoder(rec.Body).Decode(body)
				require.NoError(t, err)
				assert.Equal(t, "role must be one of [user publisher]", body.Fields["RegisterUser.role"])
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tc := range casesRegister {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls(uc)
			req := httptest.NewRequest(echo.POST, "http://devcamper.io/v1/auth/register", bytes.NewReader(tc.reqBody))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.Register(c)
			require.NoError(t, err)

			tc.checkResponse(t, rec)
		})
	}

	// Test AuthHandler.Login
	tLogin := domain.LoginUser{Email: tUser.Email, Password: "password"}
	loginB, err := json.Marshal(tLogin)
	require.NoError(t, err)

	casesLogin := []struct {
		description   string
		mockCalls     func(muc *mock.MockAuthUsecase)
		checkResponse func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			description: "Login success",
			mockCalls: func(muc *mock.MockAuthUsecase) {
				muc.EXPECT().Login(gomock.Any(), gomock.Any(), tLogin).Return(claims, nil)
			},
			checkResponse: checkToken,
		},
		{
			description: "Login invalid credentials",
			mockCalls: func(muc *mock.MockAuthUsecase) {
				muc.EXPECT().Login(gomock.Any(), gomock.Any(), tLogin).Return(nil, domain.ErrAuthenticationFailure)
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
	}

	for _, tc := range casesLogin {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls(uc)
			req := httptest.NewRequest(echo.POST, "/v1/auth/login", bytes.NewReader(loginB))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.Login(c)
			require.NoError(t, err)

			tc.checkResponse(t, rec)
		})
	}

	// Test AuthHandler.Logout
	t.Run("Logout expires cookie", func(t *testing.T) {
		req := httptest.NewRequest(echo.GET, "/v1/auth/logout", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Logout(c)
		require.NoError(t, err)

		ck := tokenCookie(t, rec)
		assert.Equal(t, "none", ck.Value)
		assert.WithinDuration(t, time.Now().Add(10*time.Second), ck.Expires, 5*time.Second)
		assert.JSONEq(t, `{"success":true,"data":{}}`, rec.Body.String())
	})

	// Test AuthHandler.Me
	t.Run("Me success", func(t *testing.T) {
		uc.EXPECT().Me(gomock.Any(), claims).Return(tUser, nil)

		req := httptest.NewRequest(echo.GET, "/v1/auth/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		tests.SetClaims(c, claims)

		err := handler.Me(c)
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), tUser.Email)
		assert.NotContains(t, rec.Body.String(), tUser.Password)
	})

	// Test AuthHandler.UpdatePassword
	t.Run("UpdatePassword wrong current password", func(t *testing.T) {
		m := domain.UpdatePassword{CurrentPassword: "wrong", NewPassword: "newpassword"}
		b, err := json.Marshal(m)
		require.NoError(t, err)
		uc.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), m, claims).Return(nil, domain.ErrAuthenticationFailure)

		req := httptest.NewRequest(echo.PUT, "/v1/auth/updatePassword", bytes.NewReader(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		tests.SetClaims(c, claims)

		err = handler.UpdatePassword(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UpdateDetails success", func(t *testing.T) {
		m := domain.UpdateDetails{Name: tests.StringPointer("Jane Doe")}
		b, err := json.Marshal(m)
		require.NoError(t, err)
		updated := tests.NewUser()
		updated.Name = "Jane Doe"
		uc.EXPECT().UpdateDetails(gomock.Any(), m, claims).Return(updated, nil)

		req := httptest.NewRequest(echo.PUT, "/v1/auth/updateDetails", bytes.NewReader(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		tests.SetClaims(c, claims)

		err = handler.UpdateDetails(c)
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), `"name":"Jane Doe"`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	// Test AuthHandler.ForgotPassword
	casesForgot := []struct {
		description string
		mockCalls   func(muc *mock.MockAuthUsecase)
		code        int
	}{
		{
			description: "ForgotPassword email sent",
			mockCalls: func(muc *mock.MockAuthUsecase) {
				muc.EXPECT().ForgotPassword(gomock.Any(), tUser.Email, "http://devcamper.io").Return(nil)
			},
			code: http.StatusOK,
		},
		{
			description: "ForgotPassword unknown email",
			mockCalls: func(muc *mock.MockAuthUsecase) {
				muc.EXPECT().ForgotPassword(gomock.Any(), tUser.Email, "http://devcamper.io").Return(domain.ErrNotFound)
			},
			code: http.StatusNotFound,
		},
		{
			description: "ForgotPassword email could not be sent",
			mockCalls: func(muc *mock.MockAuthUsecase) {
				muc.EXPECT().ForgotPassword(gomock.Any(), tUser.Email, "http://devcamper.io").Return(domain.ErrInternalServerError)
			},
			code: http.StatusInternalServerError,
		},
	}

	for _, tc := range casesForgot {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls(uc)
			req := httptest.NewRequest(echo.POST, "http://devcamper.io/v1/auth/forgetPassword", bytes.NewReader([]byte(`{"email":"`+tUser.Email+`"}`)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.ForgotPassword(c)
			require.NoError(t, err)
			assert.Equal(t, tc.code, rec.Code)
		})
	}

	// Test AuthHandler.ResetPassword
	t.Run("ResetPassword success", func(t *testing.T) {
		uc.EXPECT().ResetPassword(gomock.Any(), gomock.Any(), "abc123", "newpassword").Return(claims, nil)

		req := httptest.NewRequest(echo.PUT, "/v1/auth/resetpassword/abc123", bytes.NewReader([]byte(`{"password":"newpassword"}`)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("token")
		c.SetParamValues("abc123")

		err := handler.ResetPassword(c)
		require.NoError(t, err)
		checkToken(t, rec)
	})

	t.Run("ResetPassword invalid token", func(t *testing.T) {
		uc.EXPECT().ResetPassword(gomock.Any(), gomock.Any(), "expired", "newpassword").Return(nil, domain.ErrBadParamInput)

		req := httptest.NewRequest(echo.PUT, "/v1/auth/resetpassword/expired", bytes.NewReader([]byte(`{"password":"newpassword"}`)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("token")
		c.SetParamValues("expired")

		err := handler.ResetPassword(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	// Test AuthHandler.ConfirmEmail
	t.Run("ConfirmEmail success", func(t *testing.T) {
		uc.EXPECT().ConfirmEmail(gomock.Any(), gomock.Any(), "abc123").Return(claims, nil)

		req := httptest.NewRequest(echo.GET, "/v1/auth/confirmEmail?token=abc123", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.ConfirmEmail(c)
		require.NoError(t, err)
		checkToken(t, rec)
	})
}

func TestAuthRoutes(t *testing.T) {
	authenticator := tests.NewAuthenticator(t)

	controller := gomock.NewController(t)
	defer controller.Finish()
	uc := mock.NewMockAuthUsecase(controller)

	e, v := tests.NewEcho(t)
	authnHttp.NewAuthHandler(uc, authenticator, v, authnHttp.CookieConfig{TTL: time.Hour}, zap.NewNop(), sdktrace.NewTracerProvider().Tracer("")).RegisterRoutes(e)

	claims := tests.NewClaims(tests.UserID, auth.RoleUser)
	tkn, err := authenticator.GenerateToken(claims)
	require.NoError(t, err)

	t.Run("me without token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(echo.GET, "/v1/auth/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("me with token cookie", func(t *testing.T) {
		uc.EXPECT().Me(gomock.Any(), gomock.Any()).Return(tests.NewUser(), nil)

		req := httptest.NewRequest(echo.GET, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: auth.TokenCookie, Value: tkn})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
