package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/web"
	"github.com/semka95/devcamper/web/auth"
)

// CookieConfig describes the token cookie set on successful authentication
type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

// AuthHandler represent the http handler for authentication of the current user
type AuthHandler struct {
	authUsecase   domain.AuthUsecase
	authenticator *auth.Authenticator
	validator     *web.AppValidator
	cookie        CookieConfig
	logger        *zap.Logger
	tracer        trace.Tracer
}

// NewAuthHandler will initialize the auth/ resources endpoint
func NewAuthHandler(au domain.AuthUsecase, authenticator *auth.Authenticator, v *web.AppValidator, cookie CookieConfig, logger *zap.Logger, tracer trace.Tracer) *AuthHandler {
	return &AuthHandler{
		authUsecase:   au,
		authenticator: authenticator,
		validator:     v,
		cookie:        cookie,
		logger:        logger,
		tracer:        tracer,
	}
}

// RegisterRoutes registers routes for a path with matching handler
func (ah *AuthHandler) RegisterRoutes(e *echo.Echo) {
	jwtMiddl := ah.authenticator.Middleware()

	g := e.Group("/v1/auth")
	g.POST("/register", ah.Register)
	g.POST("/login", ah.Login)
	g.GET("/logout", ah.Logout)
	g.GET("/me", ah.Me, jwtMiddl)
	g.GET("/confirmEmail", ah.ConfirmEmail)
	g.PUT("/updateDetails", ah.UpdateDetails, jwtMiddl)
	g.PUT("/updatePassword", ah.UpdatePassword, jwtMiddl)
	g.POST("/forgetPassword", ah.ForgotPassword)
	g.PUT("/resetpassword/:token", ah.ResetPassword)
}

func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// sendToken signs claims, sets token cookie and writes token envelope
func (ah *AuthHandler) sendToken(c echo.Context, span trace.Span, claims *auth.Claims) error {
	tkn, err := ah.authenticator.GenerateToken(claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}
	span.SetAttributes(
		attribute.String("userid", claims.Subject),
	)

	c.SetCookie(&http.Cookie{
		Name:     auth.TokenCookie,
		Value:    tkn,
		Path:     "/",
		Expires:  time.Now().Add(ah.cookie.TTL),
		HttpOnly: true,
		Secure:   ah.cookie.Secure,
	})

	return c.JSON(http.StatusOK, domain.TokenResponse{Success: true, Token: tkn})
}

// Register will sign up new user and send email confirmation link
func (ah *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ah.tracer.Start(
		ctx,
		"http Register",
	)
	defer span.End()

	m := new(domain.RegisterUser)
	if err := c.Bind(m); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err := c.Validate(m); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, ah.validator)
	}

	claims, err := ah.authUsecase.Register(ctx, *m, baseURL(c))
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	return ah.sendToken(c, span, claims)
}

// Login will authenticate user by email and password
func (ah *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ah.tracer.Start(
		ctx,
		"http Login",
	)
	defer span.End()

	m := new(domain.LoginUser)
	if err := c.Bind(m); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err := c.Validate(m); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, ah.validator)
	}

	claims, err := ah.authUsecase.Login(ctx, time.Now(), *m)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	return ah.sendToken(c, span, claims)
}

// Logout will expire token cookie
func (ah *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.TokenCookie,
		Value:    "none",
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		HttpOnly: true,
		Secure:   ah.cookie.Secure,
	})

	return c.JSON(http.StatusOK, domain.NewResponse(struct{}{}))
}

// Me will get currently logged in user
func (ah *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ah.tracer.Start(
		ctx,
		"http Me",
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	u, err := ah.authUsecase.Me(ctx, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(u))
}

// ConfirmEmail will mark email of the user as confirmed by token from query string
func (ah *AuthHandler) ConfirmEmail(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ah.tracer.Start(
		ctx,
		"http ConfirmEmail",
	)
	defer span.End()

	claims, err := ah.authUsecase.ConfirmEmail(ctx, time.Now(), c.QueryParam("token"))
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	return ah.sendToken(c, span, claims)
}

// UpdateDetails will update name and email of currently logged in user
func (ah *AuthHandler) UpdateDetails(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ah.tracer.Start(
		ctx,
		"http UpdateDetails",
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	m := new(domain.UpdateDetails)
	if err = c.Bind(m); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err = c.Validate(m); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, ah.validator)
	}

	u, err := ah.authUsecase.UpdateDetails(ctx, *m, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(u))
}

// UpdatePassword will change password of currently logged in user and issue new token
func (ah *AuthHandler) UpdatePassword(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ah.tracer.Start(
		ctx,
		"http UpdatePassword",
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	m := new(domain.UpdatePassword)
	if err = c.Bind(m); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err = c.Validate(m); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, ah.validator)
	}

	newClaims, err := ah.authUsecase.UpdatePassword(ctx, time.Now(), *m, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	return ah.sendToken(c, span, newClaims)
}

// ForgotPassword will email password reset link
func (ah *AuthHandler) ForgotPassword(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ah.tracer.Start(
		ctx,
		"http ForgotPassword",
	)
	defer span.End()

	m := new(domain.ForgotPassword)
	if err := c.Bind(m); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err := c.Validate(m); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, ah.validator)
	}

	if err := ah.authUsecase.ForgotPassword(ctx, m.Email, baseURL(c)); err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse("Email sent"))
}

// ResetPassword will set new password using token from reset link
func (ah *AuthHandler) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ah.tracer.Start(
		ctx,
		"http ResetPassword",
	)
	defer span.End()

	m := new(domain.ResetPassword)
	if err := c.Bind(m); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err := c.Validate(m); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, ah.validator)
	}

	claims, err := ah.authUsecase.ResetPassword(ctx, time.Now(), c.Param("token"), m.Password)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ah.logger)
	}

	return ah.sendToken(c, span, claims)
}
