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

// ReviewHandler represent the http handler for review
type ReviewHandler struct {
	reviewUsecase domain.ReviewUsecase
	authenticator *auth.Authenticator
	validator     *web.AppValidator
	logger        *zap.Logger
	tracer        trace.Tracer
}

// NewReviewHandler will initialize the reviews/ resources endpoint
func NewReviewHandler(ru domain.ReviewUsecase, authenticator *auth.Authenticator, v *web.AppValidator, logger *zap.Logger, tracer trace.Tracer) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: ru,
		authenticator: authenticator,
		validator:     v,
		logger:        logger,
		tracer:        tracer,
	}
}

// RegisterRoutes registers routes for a path with matching handler
func (rh *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	myMiddl := _MyMiddleware.InitMiddleware(rh.logger)
	jwtMiddl := rh.authenticator.Middleware()
	writer := myMiddl.HasRole(auth.RoleUser, auth.RoleAdmin)

	e.GET("/v1/bootcamps/:bootcampId/reviews", rh.FetchByBootcamp)
	e.POST("/v1/bootcamps/:bootcampId/reviews", rh.Store, jwtMiddl, writer)

	g := e.Group("/v1/reviews")
	g.GET("", rh.Fetch, myMiddl.AdvancedQuery)
	g.GET("/:id", rh.GetByID)
	g.PUT("/:id", rh.Update, jwtMiddl, writer)
	g.DELETE("/:id", rh.Delete, jwtMiddl, writer)
}

// Fetch will get reviews filtered, sorted and paginated by query string
func (rh *ReviewHandler) Fetch(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := rh.tracer.Start(
		ctx,
		"http Fetch",
	)
	defer span.End()

	res, err := rh.reviewUsecase.Fetch(ctx, _MyMiddleware.Query(c))
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}

	return c.JSON(http.StatusOK, res)
}

// FetchByBootcamp will get all reviews of the bootcamp
func (rh *ReviewHandler) FetchByBootcamp(c echo.Context) error {
	bootcampID := c.Param("bootcampId")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := rh.tracer.Start(
		ctx,
		"http FetchByBootcamp",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID)),
	)
	defer span.End()

	list, err := rh.reviewUsecase.FetchByBootcamp(ctx, bootcampID)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewListResponse(list))
}

// GetByID will get review by given id
func (rh *ReviewHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := rh.tracer.Start(
		ctx,
		"http GetByID",
		trace.WithAttributes(
			attribute.String("reviewid", id)),
	)
	defer span.End()

	res, err := rh.reviewUsecase.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(res))
}

// Store will add new review to the bootcamp
func (rh *ReviewHandler) Store(c echo.Context) error {
	bootcampID := c.Param("bootcampId")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := rh.tracer.Start(
		ctx,
		"http Store",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}

	newReview := new(domain.CreateReview)
	if err = c.Bind(newReview); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err = c.Validate(newReview); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, rh.validator)
	}

	res, err := rh.reviewUsecase.Store(ctx, bootcampID, *newReview, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}
	span.SetAttributes(
		attribute.String("reviewid", res.ID.Hex()),
	)

	return c.JSON(http.StatusCreated, domain.NewResponse(res))
}

// Update will update review by given id and request body
func (rh *ReviewHandler) Update(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := rh.tracer.Start(
		ctx,
		"http Update",
		trace.WithAttributes(
			attribute.String("reviewid", id)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}

	upd := new(domain.UpdateReview)
	if err = c.Bind(upd); err != nil {
		span.RecordError(err)
		return web.RespondBindError(c, err)
	}

	if err = c.Validate(upd); err != nil {
		span.RecordError(err)
		return web.RespondValidationError(c, err, rh.validator)
	}

	res, err := rh.reviewUsecase.Update(ctx, id, *upd, claims)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(res))
}

// Delete will delete review by given id
func (rh *ReviewHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := rh.tracer.Start(
		ctx,
		"http Delete",
		trace.WithAttributes(
			attribute.String("reviewid", id)),
	)
	defer span.End()

	claims, err := web.Claims(c)
	if err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}

	if err = rh.reviewUsecase.Delete(ctx, id, claims); err != nil {
		span.RecordError(err)
		return web.RespondError(c, err, rh.logger)
	}

	return c.JSON(http.StatusOK, domain.NewResponse(struct{}{}))
}
