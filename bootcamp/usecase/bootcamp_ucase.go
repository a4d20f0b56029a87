package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/web/auth"
)

type bootcampUsecase struct {
	bootcampRepo   domain.BootcampRepository
	courseRepo     domain.CourseRepository
	reviewRepo     domain.ReviewRepository
	geocoder       domain.Geocoder
	photos         domain.PhotoStore
	contextTimeout time.Duration
	tracer         trace.Tracer
}

// NewBootcampUsecase will create new a bootcampUsecase object representation of domain.BootcampUsecase interface
func NewBootcampUsecase(b domain.BootcampRepository, c domain.CourseRepository, r domain.ReviewRepository, g domain.Geocoder, p domain.PhotoStore, timeout time.Duration, tracer trace.Tracer) domain.BootcampUsecase {
	return &bootcampUsecase{
		bootcampRepo:   b,
		courseRepo:     c,
		reviewRepo:     r,
		geocoder:       g,
		photos:         p,
		contextTimeout: timeout,
		tracer:         tracer,
	}
}

func (bc *bootcampUsecase) Fetch(c context.Context, q query.Query) (*query.Result[domain.Bootcamp], error) {
	ctx, cancel := context.WithTimeout(c, bc.contextTimeout)
	defer cancel()

	ctx, span := bc.tracer.Start(
		ctx,
		"usecase Fetch",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	return bc.bootcampRepo.Fetch(ctx, q)
}

func (bc *bootcampUsecase) GetByID(c context.Context, id string) (*domain.Bootcamp, error) {
	ctx, cancel := context.WithTimeout(c, bc.contextTimeout)
	defer cancel()

	ctx, span := bc.tracer.Start(
		ctx,
		"usecase GetByID",
		trace.WithAttributes(
			attribute.String("bootcampid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("bootcamp ID is not valid ObjectID: %w: %s", domain.ErrBadParamInput, err.Error())
	}

	return bc.bootcampRepo.GetByID(ctx, objID)
}

func (bc *bootcampUsecase) GetInRadius(c context.Context, zipcode string, distance float64) ([]*domain.Bootcamp, error) {
	ctx, cancel := context.WithTimeout(c, bc.contextTimeout)
	defer cancel()

	ctx, span := bc.tracer.Start(
		ctx,
		"usecase GetInRadius",
		trace.WithAttributes(
			attribute.String("zipcode", zipcode),
			attribute.Float64("distance", distance)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	if distance <= 0 {
		err := fmt.Errorf("distance must be positive: %w", domain.ErrBadParamInput)
		span.RecordError(err)
		return nil, err
	}

	loc, err := bc.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("can't geocode zipcode %s: %w", zipcode, err)
	}
	if len(loc.Coordinates) != 2 {
		err = fmt.Errorf("geocoder returned no coordinates for %s: %w", zipcode, domain.ErrInternalServerError)
		span.RecordError(err)
		return nil, err
	}

	// distance is in miles, $centerSphere expects radians
	radius := distance / domain.EarthRadiusMiles

	return bc.bootcampRepo.GetInRadius(ctx, loc.Coordinates[0], loc.Coordinates[1], radius)
}

func (bc *bootcampUsecase) Store(c context.Context, cb domain.CreateBootcamp, claims *auth.Claims) (*domain.Bootcamp, error) {
	ctx, cancel := context.WithTimeout(c, bc.contextTimeout)
	defer cancel()

	ctx, span := bc.tracer.Start(
		ctx,
		"usecase Store",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("user ID is not valid ObjectID: %w: %s", domain.ErrAuthenticationFailure, err.Error())
	}

	if !claims.HasRole(auth.RoleAdmin) {
		n, err := bc.bootcampRepo.CountByUser(ctx, userID)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if n > 0 {
			err = fmt.Errorf("the user with ID %s has already published a bootcamp: %w", claims.Subject, domain.ErrBadParamInput)
			span.RecordError(err)
			return nil, err
		}
	}

	loc, err := bc.geocoder.Geocode(ctx, cb.Address)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("can't geocode address: %w", err)
	}

	now := time.Now().Truncate(time.Millisecond).UTC()
	b := &domain.Bootcamp{
		ID:            primitive.NewObjectID(),
		Name:          cb.Name,
		Slug:          slug.Make(cb.Name),
		Description:   cb.Description,
		Website:       cb.Website,
		Phone:         cb.Phone,
		Email:         cb.Email,
		Location:      loc,
		Careers:       cb.Careers,
		Photo:         domain.DefaultPhoto,
		Housing:       cb.Housing,
		JobAssistance: cb.JobAssistance,
		JobGuarantee:  cb.JobGuarantee,
		AcceptGi:      cb.AcceptGi,
		User:          userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	span.SetAttributes(attribute.String("bootcampid", b.ID.Hex()))

	if err = bc.bootcampRepo.Store(ctx, b); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return b, nil
}

// owned loads bootcamp by id and checks that actor may change it
func (bc *bootcampUsecase) owned(ctx context.Context, id string, claims *auth.Claims, action string) (*domain.Bootcamp, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("bootcamp ID is not valid ObjectID: %w: %s", domain.ErrBadParamInput, err.Error())
	}

	b, err := bc.bootcampRepo.GetByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	if !auth.CanModify(b, claims) {
		return nil, fmt.Errorf("user %s is not authorized to %s this bootcamp: %w", claims.Subject, action, domain.ErrForbidden)
	}

	return b, nil
}

func (bc *bootcampUsecase) Update(c context.Context, id string, ub domain.UpdateBootcamp, claims *auth.Claims) (*domain.Bootcamp, error) {
	ctx, cancel := context.WithTimeout(c, bc.contextTimeout)
	defer cancel()

	ctx, span := bc.tracer.Start(
		ctx,
		"usecase Update",
		trace.WithAttributes(
			attribute.String("bootcampid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	b, err := bc.owned(ctx, id, claims, "update")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if ub.Name != nil {
		b.Name = *ub.Name
		b.Slug = slug.Make(b.Name)
	}
	if ub.Description != nil {
		b.Description = *ub.Description
	}
	if ub.Website != nil {
		b.Website = *ub.Website
	}
	if ub.Phone != nil {
		b.Phone = *ub.Phone
	}
	if ub.Email != nil {
		b.Email = *ub.Email
	}
	if ub.Careers != nil {
		b.Careers = ub.Careers
	}
	if ub.Housing != nil {
		b.Housing = *ub.Housing
	}
	if ub.JobAssistance != nil {
		b.JobAssistance = *ub.JobAssistance
	}
	if ub.JobGuarantee != nil {
		b.JobGuarantee = *ub.JobGuarantee
	}
	if ub.AcceptGi != nil {
		b.AcceptGi = *ub.AcceptGi
	}
	if ub.Address != nil {
		loc, err := bc.geocoder.Geocode(ctx, *ub.Address)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("can't geocode address: %w", err)
		}
		b.Location = loc
	}

	b.UpdatedAt = time.Now().Truncate(time.Millisecond).UTC()

	if err = bc.bootcampRepo.Update(ctx, b); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return b, nil
}

func (bc *bootcampUsecase) Delete(c context.Context, id string, claims *auth.Claims) error {
	ctx, cancel := context.WithTimeout(c, bc.contextTimeout)
	defer cancel()

	ctx, span := bc.tracer.Start(
		ctx,
		"usecase Delete",
		trace.WithAttributes(
			attribute.String("bootcampid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	b, err := bc.owned(ctx, id, claims, "delete")
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err = bc.bootcampRepo.Delete(ctx, b.ID); err != nil {
		span.RecordError(err)
		return err
	}

	courses, err := bc.courseRepo.DeleteByBootcamp(ctx, b.ID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("can't delete courses of bootcamp %s: %w", id, err)
	}

	reviews, err := bc.reviewRepo.DeleteByBootcamp(ctx, b.ID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("can't delete reviews of bootcamp %s: %w", id, err)
	}

	span.SetAttributes(
		attribute.Int64("courses", courses),
		attribute.Int64("reviews", reviews),
	)

	return nil
}

func (bc *bootcampUsecase) UploadPhoto(c context.Context, id string, file *multipart.FileHeader, claims *auth.Claims) (*domain.Bootcamp, error) {
	ctx, cancel := context.WithTimeout(c, bc.contextTimeout)
	defer cancel()

	ctx, span := bc.tracer.Start(
		ctx,
		"usecase UploadPhoto",
		trace.WithAttributes(
			attribute.String("bootcampid", id)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	b, err := bc.owned(ctx, id, claims, "update")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if file == nil {
		err = fmt.Errorf("please upload a file: %w", domain.ErrBadParamInput)
		span.RecordError(err)
		return nil, err
	}

	name, err := bc.photos.Save(ctx, b.ID.Hex(), file)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	b.Photo = name
	b.UpdatedAt = time.Now().Truncate(time.Millisecond).UTC()

	if err = bc.bootcampRepo.Update(ctx, b); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return b, nil
}
