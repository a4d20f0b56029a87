package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/web/auth"
)

type reviewUsecase struct {
	reviewRepo     domain.ReviewRepository
	bootcampRepo   domain.BootcampRepository
	averages       domain.AverageRefresher
	contextTimeout time.Duration
	tracer         trace.Tracer
}

// NewReviewUsecase will create new a reviewUsecase object representation of domain.ReviewUsecase interface
func NewReviewUsecase(r domain.ReviewRepository, b domain.BootcampRepository, a domain.AverageRefresher, timeout time.Duration, tracer trace.Tracer) domain.ReviewUsecase {
	return &reviewUsecase{
		reviewRepo:     r,
		bootcampRepo:   b,
		averages:       a,
		contextTimeout: timeout,
		tracer:         tracer,
	}
}

func (rc *reviewUsecase) Fetch(c context.Context, q query.Query) (*query.Result[domain.Review], error) {
	ctx, cancel := context.WithTimeout(c, rc.contextTimeout)
	defer cancel()

	ctx, span := rc.tracer.Start(
		ctx,
		"usecase Fetch",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	return rc.reviewRepo.Fetch(ctx, q)
}

func (rc *reviewUsecase) FetchByBootcamp(c context.Context, bootcampID string) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(c, rc.contextTimeout)
	defer cancel()

	ctx, span := rc.tracer.Start(
		ctx,
		"usecase FetchByBootcamp",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(bootcampID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("bootcamp ID is not valid ObjectID: %w: %s", domain.ErrBadParamInput, err.Error())
	}

	return rc.reviewRepo.FetchByBootcamp(ctx, objID)
}

func (rc *reviewUsecase) GetByID(c context.Context, id string) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(c, rc.contextTimeout)
	defer cancel()

	ctx, span := rc.tracer.Start(
		ctx,
		"usecase GetByID",
		trace.WithAttributes(
			attribute.String("reviewid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("review ID is not valid ObjectID: %w: %s", domain.ErrBadParamInput, err.Error())
	}

	review, err := rc.reviewRepo.GetByID(ctx, objID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	b, err := rc.bootcampRepo.GetByID(ctx, review.Bootcamp.ID)
	switch {
	case err == nil:
		review.Bootcamp = domain.BootcampRef{ID: b.ID, Name: b.Name, Description: b.Description}
	case !errors.Is(err, domain.ErrNotFound):
		span.RecordError(err)
		return nil, err
	}

	return review, nil
}

func (rc *reviewUsecase) Store(c context.Context, bootcampID string, m domain.CreateReview, claims *auth.Claims) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(c, rc.contextTimeout)
	defer cancel()

	ctx, span := rc.tracer.Start(
		ctx,
		"usecase Store",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(bootcampID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("bootcamp ID is not valid ObjectID: %w: %s", domain.ErrBadParamInput, err.Error())
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("user ID is not valid ObjectID: %w: %s", domain.ErrAuthenticationFailure, err.Error())
	}

	if _, err = rc.bootcampRepo.GetByID(ctx, objID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	now := time.Now().Truncate(time.Millisecond).UTC()
	review := &domain.Review{
		ID:        primitive.NewObjectID(),
		Title:     m.Title,
		Text:      m.Text,
		Rating:    m.Rating,
		Bootcamp:  domain.BootcampRef{ID: objID},
		User:      userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	span.SetAttributes(attribute.String("reviewid", review.ID.Hex()))

	// one review per bootcamp and user is enforced by unique index
	if err = rc.reviewRepo.Store(ctx, review); err != nil {
		span.RecordError(err)
		return nil, err
	}

	rc.averages.RefreshAverageRating(ctx, objID)

	return review, nil
}

// owned loads review by id and checks that actor may change it
func (rc *reviewUsecase) owned(ctx context.Context, id string, claims *auth.Claims, action string) (*domain.Review, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("review ID is not valid ObjectID: %w: %s", domain.ErrBadParamInput, err.Error())
	}

	review, err := rc.reviewRepo.GetByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	if !auth.CanModify(review, claims) {
		return nil, fmt.Errorf("user %s is not authorized to %s review %s: %w", claims.Subject, action, id, domain.ErrForbidden)
	}

	return review, nil
}

func (rc *reviewUsecase) Update(c context.Context, id string, m domain.UpdateReview, claims *auth.Claims) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(c, rc.contextTimeout)
	defer cancel()

	ctx, span := rc.tracer.Start(
		ctx,
		"usecase Update",
		trace.WithAttributes(
			attribute.String("reviewid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	review, err := rc.owned(ctx, id, claims, "update")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	ratingChanged := m.Rating != nil && *m.Rating != review.Rating

	if m.Title != nil {
		review.Title = *m.Title
	}
	if m.Text != nil {
		review.Text = *m.Text
	}
	if m.Rating != nil {
		review.Rating = *m.Rating
	}

	review.UpdatedAt = time.Now().Truncate(time.Millisecond).UTC()

	if err = rc.reviewRepo.Update(ctx, review); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if ratingChanged {
		rc.averages.RefreshAverageRating(ctx, review.Bootcamp.ID)
	}

	return review, nil
}

func (rc *reviewUsecase) Delete(c context.Context, id string, claims *auth.Claims) error {
	ctx, cancel := context.WithTimeout(c, rc.contextTimeout)
	defer cancel()

	ctx, span := rc.tracer.Start(
		ctx,
		"usecase Delete",
		trace.WithAttributes(
			attribute.String("reviewid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	review, err := rc.owned(ctx, id, claims, "delete")
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err = rc.reviewRepo.Delete(ctx, review.ID); err != nil {
		span.RecordError(err)
		return err
	}

	rc.averages.RefreshAverageRating(ctx, review.Bootcamp.ID)

	return nil
}
