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

// CourseHandler represent the http handler for course
type CourseHandler struct {
	courseUsecase domain.CourseUsecase
	authenticator *auth.Authenticator
	validator     *web.AppValidator
	logger        *zap.Logger
	tracer        trace.Tracer
}

// NewCourseHandler will initialize the courses/ resources endpoint
func NewCourseHandler(cu domain.CourseUsecase, authenticator *auth.Authenticator, v *web.AppValidator, logger *zap.Logger, tracer trace.Tracer) *CourseHandler {
	return &CourseHandler{
		courseUsecase: cu,
		authenticator: authenticator,
		validator:     v,
		logger:        logger,
		tracer:        tracer,
	}
}

// RegisterRoutes registers routes for a path with matching handler
func (ch *CourseHandler) RegisterRoutes(e *echo.Echo) {
	myMiddl := _MyMiddleware.InitMiddleware(ch.logger)
	jwtMiddl := ch.authenticator.Middleware()
	writer := myMiddl.HasRole(auth.RolePublisher, auth.RoleAdmin)

	e.GET("/v1/bootcamps/:bootcampId/courses", ch.FetchByBootcamp)
	e.POST("/v1/bootcamps/:bootcampId/courses", ch.Store, jwtMiddl, writer)

	g := e.Group("/v1/courses")
	g.GET("", ch.Fetch, myMiddl.AdvancedQuery)
	g.GET("/:id", ch.GetByID)
	g.PUT("/:id", ch.Update, jwtMiddl, writer)
	g.DELETE("/:id", ch.Delete, jwtMiddl, writer)
}

// Fetch will get courses filtered, sorted and paginated by query string
func (ch *CourseHandler) Fetch(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ch.tracer.Start(
		ctx,
		"http Fetch",
	)
	defer span.End()

	res, err := ch.courseUsecase.Fetch(ctx, _MyMiddleware.Query(c))
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}

	return c.JSON(http.StatusOK, res)
}

// FetchByBootcamp will get all courses of the bootcamp
func (ch *CourseHandler) FetchByBootcamp(c echo.Context) error {
	bootcampID := c.Param("bootcampId")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ch.tracer.Start(
		ctx,
		"http FetchByBootcamp",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID)),
	)
	defer span.End()

	list, err := ch.courseUsecase.FetchByBootcamp(ctx, bootcampID)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}

	return c.JSON(http.StatusOK, domain.NewListResponse(list))
}

// GetByID will get course by given id
func (ch *CourseHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ch.tracer.Start(
		ctx,
		"http GetByID",
		trace.WithAttributes(
			attribute.String("courseid", id)),
	)
	defer span.End()

	res, err := ch.courseUsecase.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(res))
}

// Store will add new course to the bootcamp
func (ch *CourseHandler) Store(c echo.Context) error {
	bootcampID := c.Param("bootcampId")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ch.tracer.Start(
		ctx,
		"http Store",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}

	newCourse := new(domain.CreateCourse)
	if err = c.Bind(newCourse); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err = c.Validate(newCourse); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, ch.validator)
	}

	res, err := ch.courseUsecase.Store(ctx, bootcampID, *newCourse, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}
	span.SetAttributes(
		attribute.String("courseid", res.ID.Hex()),
	)

	return c.JSON(http.StatusCreated, domain.NewResponse(res))
}

// Update will update course by given id and request body
func (ch *CourseHandler) Update(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ch.tracer.Start(
		ctx,
		"http Update",
		trace.WithAttributes(
			attribute.String("courseid", id)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}

	upd := new(domain.UpdateCourse)
	if err = c.Bind(upd); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err = c.Validate(upd); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, ch.validator)
	}

	res, err := ch.courseUsecase.Update(ctx, id, *upd, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(res))
}

// Delete will delete course by given id
func (ch *CourseHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := ch.tracer.Start(
		ctx,
		"http Delete",
		trace.WithAttributes(
			attribute.String("courseid", id)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}

	if err = ch.courseUsecase.Delete(ctx, id, claims); err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, ch.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(struct{}{}))
}
