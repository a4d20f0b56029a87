package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/store"
)

var bootcampLookup = &query.Lookup{
	From:   domain.BootcampsCollection,
	Field:  "bootcamp",
	Select: []string{"name", "description"},
}

type mongoCourseRepository struct {
	Conn   *mongo.Database
	logger *zap.Logger
	tracer trace.Tracer
}

// NewMongoCourseRepository will create an object that represent the domain.CourseRepository interface
func NewMongoCourseRepository(c *mongo.Client, db string, logger *zap.Logger, tracer trace.Tracer) domain.CourseRepository {
	return &mongoCourseRepository{
		Conn:   c.Database(db),
		logger: logger,
		tracer: tracer,
	}
}

func (m *mongoCourseRepository) fetch(ctx context.Context, command interface{}) ([]*domain.Course, error) {
	ctx, span := m.tracer.Start(ctx, "repository fetch")
	defer span.End()

	cur, err := m.Conn.RunCommandCursor(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("can't execute command: %w", err)
	}

	defer func(ctx context.Context) {
		err = cur.Close(ctx)
		if err != nil {
			m.logger.Error("Can't close cursor: ", zap.Error(err))
		}
	}(ctx)

	result := make([]*domain.Course, 0)

	for cur.Next(ctx) {
		elem := new(domain.Course)
		if err = cur.Decode(elem); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("can't unmarshal document into Course: %w", err)
		}

		result = append(result, elem)
	}

	if err = cur.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("course cursor error: %w", err)
	}

	return result, nil
}

func (m *mongoCourseRepository) Fetch(ctx context.Context, q query.Query) (*query.Result[domain.Course], error) {
	ctx, span := m.tracer.Start(ctx, "repository Fetch")
	defer span.End()

	res, err := query.Execute[domain.Course](ctx, m.Conn.Collection(domain.CoursesCollection), q, query.Options{
		Schema: domain.CourseSchema,
		Lookup: bootcampLookup,
	})
	if errors.Is(err, query.ErrInvalid) {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %s", domain.ErrBadParamInput, err.Error())
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("course fetch error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return res, nil
}

func (m *mongoCourseRepository) FetchByBootcamp(ctx context.Context, bootcampID primitive.ObjectID) ([]*domain.Course, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository FetchByBootcamp",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID.Hex())),
	)
	defer span.End()

	command := bson.D{
		primitive.E{Key: "find", Value: domain.CoursesCollection},
		primitive.E{Key: "filter", Value: bson.D{primitive.E{Key: "bootcamp", Value: bootcampID}}},
	}

	list, err := m.fetch(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("course fetch error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return list, nil
}

func (m *mongoCourseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Course, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository GetByID",
		trace.WithAttributes(
			attribute.String("courseid", id.Hex())),
	)
	defer span.End()

	command := bson.D{
		primitive.E{Key: "find", Value: domain.CoursesCollection},
		primitive.E{Key: "limit", Value: 1},
		primitive.E{Key: "filter", Value: bson.D{primitive.E{Key: "_id", Value: id}}},
	}

	list, err := m.fetch(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("course get error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if len(list) == 0 {
		span.RecordError(domain.ErrNotFound)
		return nil, fmt.Errorf("no course with the id of %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return list[0], nil
}

func (m *mongoCourseRepository) Store(ctx context.Context, course *domain.Course) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository Store",
		trace.WithAttributes(
			attribute.String("courseid", course.ID.Hex())),
	)
	defer span.End()

	_, err := m.Conn.Collection(domain.CoursesCollection).InsertOne(ctx, course)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("course store error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return nil
}

func (m *mongoCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository Update",
		trace.WithAttributes(
			attribute.String("courseid", course.ID.Hex())),
	)
	defer span.End()

	filter := bson.D{
		primitive.E{Key: "_id", Value: course.ID},
	}

	doc, err := store.StructToDoc(course)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("can't convert Course to bson.D: %w, %s", domain.ErrInternalServerError, err.Error())
	}
	update := bson.D{primitive.E{Key: "$set", Value: store.Without(doc, "_id")}}

	updRes, err := m.Conn.Collection(domain.CoursesCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("course update error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if updRes.MatchedCount == 0 {
		err = fmt.Errorf("course was not updated: %w", domain.ErrNoAffected)
		span.RecordError(err)
		return err
	}

	return nil
}

func (m *mongoCourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository Delete",
		trace.WithAttributes(
			attribute.String("courseid", id.Hex())),
	)
	defer span.End()

	filter := bson.D{
		primitive.E{Key: "_id", Value: id},
	}

	delRes, err := m.Conn.Collection(domain.CoursesCollection).DeleteOne(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("course delete error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if delRes.DeletedCount == 0 {
		err = fmt.Errorf("course was not deleted: %w", domain.ErrNoAffected)
		span.RecordError(err)
		return err
	}

	return nil
}

func (m *mongoCourseRepository) DeleteByBootcamp(ctx context.Context, bootcampID primitive.ObjectID) (int64, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository DeleteByBootcamp",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID.Hex())),
	)
	defer span.End()

	delRes, err := m.Conn.Collection(domain.CoursesCollection).DeleteMany(ctx, bson.D{primitive.E{Key: "bootcamp", Value: bootcampID}})
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("courses delete error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return delRes.DeletedCount, nil
}

// AverageTuition returns mean tuition of bootcamp courses, nil when it has none
func (m *mongoCourseRepository) AverageTuition(ctx context.Context, bootcampID primitive.ObjectID) (*float64, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository AverageTuition",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID.Hex())),
	)
	defer span.End()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "bootcamp", Value: bootcampID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$bootcamp"},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$tuition"}}},
		}}},
	}

	cur, err := m.Conn.Collection(domain.CoursesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("course aggregate error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	var res []struct {
		Average *float64 `bson:"average"`
	}
	if err = cur.All(ctx, &res); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("course aggregate decode error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if len(res) == 0 {
		return nil, nil
	}

	return res[0].Average, nil
}
