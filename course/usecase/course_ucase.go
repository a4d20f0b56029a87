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

type courseUsecase struct {
	courseRepo     domain.CourseRepository
	bootcampRepo   domain.BootcampRepository
	averages       domain.AverageRefresher
	contextTimeout time.Duration
	tracer         trace.Tracer
}

// NewCourseUsecase will create new a courseUsecase object representation of domain.CourseUsecase interface
func NewCourseUsecase(c domain.CourseRepository, b domain.BootcampRepository, a domain.AverageRefresher, timeout time.Duration, tracer trace.Tracer) domain.CourseUsecase {
	return &courseUsecase{
		courseRepo:     c,
		bootcampRepo:   b,
		averages:       a,
		contextTimeout: timeout,
		tracer:         tracer,
	}
}

func (cc *courseUsecase) Fetch(c context.Context, q query.Query) (*query.Result[domain.Course], error) {
	ctx, cancel := context.WithTimeout(c, cc.contextTimeout)
	defer cancel()

	ctx, span := cc.tracer.Start(
		ctx,
		"usecase Fetch",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	return cc.courseRepo.Fetch(ctx, q)
}

func (cc *courseUsecase) FetchByBootcamp(c context.Context, bootcampID string) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(c, cc.contextTimeout)
	defer cancel()

	ctx, span := cc.tracer.Start(
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

	return cc.courseRepo.FetchByBootcamp(ctx, objID)
}

func (cc *courseUsecase) GetByID(c context.Context, id string) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(c, cc.contextTimeout)
	defer cancel()

	ctx, span := cc.tracer.Start(
		ctx,
		"usecase GetByID",
		trace.WithAttributes(
			attribute.String("courseid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("course ID is not valid ObjectID: %w: %s", domain.ErrBadParamInput, err.Error())
	}

	course, err := cc.courseRepo.GetByID(ctx, objID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	b, err := cc.bootcampRepo.GetByID(ctx, course.Bootcamp.ID)
	switch {
	case err == nil:
		course.Bootcamp = domain.BootcampRef{ID: b.ID, Name: b.Name, Description: b.Description}
	case !errors.Is(err, domain.ErrNotFound):
		span.RecordError(err)
		return nil, err
	}

	return course, nil
}

func (cc *courseUsecase) Store(c context.Context, bootcampID string, m domain.CreateCourse, claims *auth.Claims) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(c, cc.contextTimeout)
	defer cancel()

	ctx, span := cc.tracer.Start(
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

	b, err := cc.bootcampRepo.GetByID(ctx, objID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !auth.CanModify(b, claims) {
		err = fmt.Errorf("user %s is not authorized to add a course to bootcamp %s: %w", claims.Subject, bootcampID, domain.ErrForbidden)
		span.RecordError(err)
		return nil, err
	}

	now := time.Now().Truncate(time.Millisecond).UTC()
	course := &domain.Course{
		ID:                   primitive.NewObjectID(),
		Title:                m.Title,
		Description:          m.Description,
		Weeks:                m.Weeks,
		Tuition:              m.Tuition,
		MinimumSkill:         m.MinimumSkill,
		ScholarshipAvailable: m.ScholarshipAvailable,
		Bootcamp:             domain.BootcampRef{ID: objID},
		User:                 userID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	span.SetAttributes(attribute.String("courseid", course.ID.Hex()))

	if err = cc.courseRepo.Store(ctx, course); err != nil {
		span.RecordError(err)
		return nil, err
	}

	cc.averages.RefreshAverageCost(ctx, objID)

	return course, nil
}

// owned loads course by id and checks that actor may change it
func (cc *courseUsecase) owned(ctx context.Context, id string, claims *auth.Claims, action string) (*domain.Course, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("course ID is not valid ObjectID: %w: %s", domain.ErrBadParamInput, err.Error())
	}

	course, err := cc.courseRepo.GetByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	if !auth.CanModify(course, claims) {
		return nil, fmt.Errorf("user %s is not authorized to %s course %s: %w", claims.Subject, action, id, domain.ErrForbidden)
	}

	return course, nil
}

func (cc *courseUsecase) Update(c context.Context, id string, m domain.UpdateCourse, claims *auth.Claims) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(c, cc.contextTimeout)
	defer cancel()

	ctx, span := cc.tracer.Start(
		ctx,
		"usecase Update",
		trace.WithAttributes(
			attribute.String("courseid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	course, err := cc.owned(ctx, id, claims, "update")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	tuitionChanged := m.Tuition != nil && *m.Tuition != course.Tuition

	if m.Title != nil {
		course.Title = *m.Title
	}
	if m.Description != nil {
		course.Description = *m.Description
	}
	if m.Weeks != nil {
		course.Weeks = *m.Weeks
	}
	if m.Tuition != nil {
		course.Tuition = *m.Tuition
	}
	if m.MinimumSkill != nil {
		course.MinimumSkill = *m.MinimumSkill
	}
	if m.ScholarshipAvailable != nil {
		course.ScholarshipAvailable = *m.ScholarshipAvailable
	}

	course.UpdatedAt = time.Now().Truncate(time.Millisecond).UTC()

	if err = cc.courseRepo.Update(ctx, course); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if tuitionChanged {
		cc.averages.RefreshAverageCost(ctx, course.Bootcamp.ID)
	}

	return course, nil
}

func (cc *courseUsecase) Delete(c context.Context, id string, claims *auth.Claims) error {
	ctx, cancel := context.WithTimeout(c, cc.contextTimeout)
	defer cancel()

	ctx, span := cc.tracer.Start(
		ctx,
		"usecase Delete",
		trace.WithAttributes(
			attribute.String("courseid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	course, err := cc.owned(ctx, id, claims, "delete")
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err = cc.courseRepo.Delete(ctx, course.ID); err != nil {
		span.RecordError(err)
		return err
	}

	cc.averages.RefreshAverageCost(ctx, course.Bootcamp.ID)

	return nil
}
