package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
	_MyMiddleware "github.com/semka95/devcamper/middleware"
	"github.com/semka95/devcamper/web"
	"github.com/semka95/devcamper/web/auth"
)

// UserHandler represent the http handler for user administration
type UserHandler struct {
	userUsecase   domain.UserUsecase
	authenticator *auth.Authenticator
	validator     *web.AppValidator
	logger        *zap.Logger
	tracer        trace.Tracer
}

// NewUserHandler will initialize the users/ resources endpoint
func NewUserHandler(us domain.UserUsecase, authenticator *auth.Authenticator, v *web.AppValidator, logger *zap.Logger, tracer trace.Tracer) *UserHandler {
	return &UserHandler{
		userUsecase:   us,
		authenticator: authenticator,
		validator:     v,
		logger:        logger,
		tracer:        tracer,
	}
}

// RegisterRoutes registers routes for a path with matching handler, all of
// them are available to admins only
func (uh *UserHandler) RegisterRoutes(e *echo.Echo) {
	myMiddl := _MyMiddleware.InitMiddleware(uh.logger)
	g := e.Group("/v1/users", uh.authenticator.Middleware(), myMiddl.HasRole(auth.RoleAdmin))
	g.GET("", uh.Fetch, myMiddl.AdvancedQuery)
	g.POST("", uh.Create)
	g.GET("/:id", uh.GetByID)
	g.PUT("/:id", uh.Update)
	g.DELETE("/:id", uh.Delete)
}

// Fetch will get users filtered, sorted and paginated by query string
func (uh *UserHandler) Fetch(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := uh.tracer.Start(
		ctx,
		"http Fetch",
	)
	defer span.End()

	res, err := uh.userUsecase.Fetch(ctx, _MyMiddleware.Query(c))
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, uh.logger)
	}

	return c.JSON(http.StatusOK, res)
}

// GetByID will get user by given id
func (uh *UserHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := uh.tracer.Start(
		ctx,
		"http GetByID",
	)
	defer span.End()

	u, err := uh.userUsecase.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, uh.logger)
	}
	span.SetAttributes(
		attribute.String("userid", u.ID.Hex()),
	)

	return c.JSON(http.StatusOK, domain.NewResponse(u))
}

// Create will store the User by given request body
func (uh *UserHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := uh.tracer.Start(
		ctx,
		"http Create",
	)
	defer span.End()

	newUser := new(domain.CreateUser)
	if err := c.Bind(newUser); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err := c.Validate(newUser); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, uh.validator)
	}

	u, err := uh.userUsecase.Create(ctx, *newUser)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, uh.logger)
	}
	span.SetAttributes(
		attribute.String("userid", u.ID.Hex()),
	)

	return c.JSON(http.StatusCreated, domain.NewResponse(u))
}

// Update will update the User by given request body
func (uh *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := uh.tracer.Start(
		ctx,
		"http Update",
		trace.WithAttributes(
			attribute.String("userid", id)),
	)
	defer span.End()

	upd := new(domain.UpdateUser)
	if err := c.Bind(upd); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err := c.Validate(upd); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, uh.validator)
	}

	u, err := uh.userUsecase.Update(ctx, id, *upd)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, uh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(u))
}

// Delete will delete user by given id
func (uh *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := uh.tracer.Start(
		ctx,
		"http Delete",
		trace.WithAttributes(
			attribute.String("userid", id)),
	)
	defer span.End()

	if err := uh.userUsecase.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, uh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(struct{}{}))
}
