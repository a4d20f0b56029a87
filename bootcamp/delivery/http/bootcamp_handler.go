package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
	_MyMiddleware "github.com/semka95/devcamper/middleware"
	"github.com/semka95/devcamper/web"
	"github.com/semka95/devcamper/web/auth"
)

// BootcampHandler represent the http handler for bootcamp
type BootcampHandler struct {
	bootcampUsecase domain.BootcampUsecase
	authenticator   *auth.Authenticator
	validator       *web.AppValidator
	logger          *zap.Logger
	tracer          trace.Tracer
}

// NewBootcampHandler will initialize the bootcamps/ resources endpoint
func NewBootcampHandler(bu domain.BootcampUsecase, authenticator *auth.Authenticator, v *web.AppValidator, logger *zap.Logger, tracer trace.Tracer) *BootcampHandler {
	return &BootcampHandler{
		bootcampUsecase: bu,
		authenticator:   authenticator,
		validator:       v,
		logger:          logger,
		tracer:          tracer,
	}
}

// RegisterRoutes registers routes for a path with matching handler
func (bh *BootcampHandler) RegisterRoutes(e *echo.Echo) {
	myMiddl := _MyMiddleware.InitMiddleware(bh.logger)
	jwtMiddl := bh.authenticator.Middleware()
	publisher := myMiddl.HasRole(auth.RolePublisher, auth.RoleAdmin)

	g := e.Group("/v1/bootcamps")
	g.GET("", bh.Fetch, myMiddl.AdvancedQuery)
	g.POST("", bh.Store, jwtMiddl, publisher)
	g.GET("/radius/:zipcode/:distance", bh.GetInRadius)
	g.GET("/:id", bh.GetByID)
	g.PUT("/:id", bh.Update, jwtMiddl, publisher)
	g.DELETE("/:id", bh.Delete, jwtMiddl, publisher)
	g.PUT("/:id/photo", bh.UploadPhoto, jwtMiddl, publisher)
}

// Fetch will get bootcamps filtered, sorted and paginated by query string
func (bh *BootcampHandler) Fetch(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := bh.tracer.Start(
		ctx,
		"http Fetch",
	)
	defer span.End()

	res, err := bh.bootcampUsecase.Fetch(ctx, _MyMiddleware.Query(c))
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	return c.JSON(http.StatusOK, res)
}

// GetByID will get bootcamp by given id
func (bh *BootcampHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := bh.tracer.Start(
		ctx,
		"http GetByID",
		trace.WithAttributes(
			attribute.String("bootcampid", id)),
	)
	defer span.End()

	b, err := bh.bootcampUsecase.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(b))
}

// GetInRadius will get bootcamps within distance miles of zipcode
func (bh *BootcampHandler) GetInRadius(c echo.Context) error {
	zipcode := c.Param("zipcode")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := bh.tracer.Start(
		ctx,
		"http GetInRadius",
		trace.WithAttributes(
			attribute.String("zipcode", zipcode)),
	)
	defer span.End()

	distance, err := strconv.ParseFloat(c.Param("distance"), 64)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, fmt.Errorf("distance must be a number: %w", domain.ErrBadParamInput), bh.logger)
	}

	list, err := bh.bootcampUsecase.GetInRadius(ctx, zipcode, distance)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewListResponse(list))
}

// Store will create new bootcamp owned by the current user
func (bh *BootcampHandler) Store(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := bh.tracer.Start(
		ctx,
		"http Store",
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	newBootcamp := new(domain.CreateBootcamp)
	if err = c.Bind(newBootcamp); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err = c.Validate(newBootcamp); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, bh.validator)
	}

	b, err := bh.bootcampUsecase.Store(ctx, *newBootcamp, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}
	span.SetAttributes(
		attribute.String("bootcampid", b.ID.Hex()),
	)

	return c.JSON(http.StatusCreated, domain.NewResponse(b))
}

// Update will update bootcamp by given id and request body
func (bh *BootcampHandler) Update(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := bh.tracer.Start(
		ctx,
		"http Update",
		trace.WithAttributes(
			attribute.String("bootcampid", id)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	ub := new(domain.UpdateBootcamp)
	if err = c.Bind(ub); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err = c.Validate(ub); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, bh.validator)
	}

	b, err := bh.bootcampUsecase.Update(ctx, id, *ub, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(b))
}

// Delete will delete bootcamp by given id along with its courses and reviews
func (bh *BootcampHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := bh.tracer.Start(
		ctx,
		"http Delete",
		trace.WithAttributes(
			attribute.String("bootcampid", id)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	if err = bh.bootcampUsecase.Delete(ctx, id, claims); err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(struct{}{}))
}

// UploadPhoto will store photo sent as multipart "file" field
func (bh *BootcampHandler) UploadPhoto(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := bh.tracer.Start(
		ctx,
		"http UploadPhoto",
		trace.WithAttributes(
			attribute.String("bootcampid", id)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	file, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		span.RecordError(err)
		return web.RespondError(c, fmt.Errorf("can't read uploaded file: %w: %s", domain.ErrBadParamInput, err.Error()), bh.logger)
	}

	b, err := bh.bootcampUsecase.UploadPhoto(ctx, id, file, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, bh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(b.Photo))
}
