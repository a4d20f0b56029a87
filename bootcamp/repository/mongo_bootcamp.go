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

type mongoBootcampRepository struct {
	Conn   *mongo.Database
	logger *zap.Logger
	tracer trace.Tracer
}

// NewMongoBootcampRepository will create an object that represent the domain.BootcampRepository interface
func NewMongoBootcampRepository(c *mongo.Client, db string, logger *zap.Logger, tracer trace.Tracer) domain.BootcampRepository {
	return &mongoBootcampRepository{
		Conn:   c.Database(db),
		logger: logger,
		tracer: tracer,
	}
}

func (m *mongoBootcampRepository) fetch(ctx context.Context, command interface{}) ([]*domain.Bootcamp, error) {
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

	result := make([]*domain.Bootcamp, 0)

	for cur.Next(ctx) {
		elem := new(domain.Bootcamp)
		if err = cur.Decode(elem); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("can't unmarshal document into Bootcamp: %w", err)
		}

		result = append(result, elem)
	}

	if err = cur.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("bootcamp cursor error: %w", err)
	}

	return result, nil
}

func (m *mongoBootcampRepository) Fetch(ctx context.Context, q query.Query) (*query.Result[domain.Bootcamp], error) {
	ctx, span := m.tracer.Start(ctx, "repository Fetch")
	defer span.End()

	res, err := query.Execute[domain.Bootcamp](ctx, m.Conn.Collection(domain.BootcampsCollection), q, query.Options{
		Schema: domain.BootcampSchema,
	})
	if errors.Is(err, query.ErrInvalid) {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %s", domain.ErrBadParamInput, err.Error())
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("bootcamp fetch error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return res, nil
}

func (m *mongoBootcampRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Bootcamp, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository GetByID",
		trace.WithAttributes(
			attribute.String("bootcampid", id.Hex())),
	)
	defer span.End()

	command := bson.D{
		primitive.E{Key: "find", Value: domain.BootcampsCollection},
		primitive.E{Key: "limit", Value: 1},
		primitive.E{Key: "filter", Value: bson.D{primitive.E{Key: "_id", Value: id}}},
	}

	list, err := m.fetch(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("bootcamp get error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if len(list) == 0 {
		span.RecordError(domain.ErrNotFound)
		return nil, fmt.Errorf("bootcamp not found with id of %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return list[0], nil
}

func (m *mongoBootcampRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository CountByUser",
		trace.WithAttributes(
			attribute.String("userid", userID.Hex())),
	)
	defer span.End()

	n, err := m.Conn.Collection(domain.BootcampsCollection).CountDocuments(ctx, bson.D{primitive.E{Key: "user", Value: userID}})
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("bootcamp count error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return n, nil
}

func (m *mongoBootcampRepository) GetInRadius(ctx context.Context, lng, lat, radius float64) ([]*domain.Bootcamp, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository GetInRadius",
		trace.WithAttributes(
			attribute.Float64("lng", lng),
			attribute.Float64("lat", lat),
			attribute.Float64("radius", radius)),
	)
	defer span.End()

	filter := bson.D{primitive.E{Key: "location.coordinates", Value: bson.D{
		primitive.E{Key: "$geoWithin", Value: bson.D{
			primitive.E{Key: "$centerSphere", Value: bson.A{bson.A{lng, lat}, radius}},
		}},
	}}}

	command := bson.D{
		primitive.E{Key: "find", Value: domain.BootcampsCollection},
		primitive.E{Key: "filter", Value: filter},
	}

	list, err := m.fetch(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("bootcamp radius search error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return list, nil
}

func (m *mongoBootcampRepository) Store(ctx context.Context, bootcamp *domain.Bootcamp) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository Store",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcamp.ID.Hex())),
	)
	defer span.End()

	_, err := m.Conn.Collection(domain.BootcampsCollection).InsertOne(ctx, bootcamp)
	if mongo.IsDuplicateKeyError(err) {
		span.RecordError(err)
		return fmt.Errorf("bootcamp with name %q already exists: %w", bootcamp.Name, domain.ErrConflict)
	}
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("bootcamp store error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return nil
}

func (m *mongoBootcampRepository) Update(ctx context.Context, bootcamp *domain.Bootcamp) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository Update",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcamp.ID.Hex())),
	)
	defer span.End()

	filter := bson.D{
		primitive.E{Key: "_id", Value: bootcamp.ID},
	}

	doc, err := store.StructToDoc(bootcamp)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("can't convert Bootcamp to bson.D: %w, %s", domain.ErrInternalServerError, err.Error())
	}
	// averages are owned by the aggregate maintainer
	update := bson.D{primitive.E{Key: "$set", Value: store.Without(doc, "_id", "averageCost", "averageRating")}}

	updRes, err := m.Conn.Collection(domain.BootcampsCollection).UpdateOne(ctx, filter, update)
	if mongo.IsDuplicateKeyError(err) {
		span.RecordError(err)
		return fmt.Errorf("bootcamp with name %q already exists: %w", bootcamp.Name, domain.ErrConflict)
	}
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("bootcamp update error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if updRes.MatchedCount == 0 {
		err = fmt.Errorf("bootcamp was not updated: %w", domain.ErrNoAffected)
		span.RecordError(err)
		return err
	}

	return nil
}

func (m *mongoBootcampRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository Delete",
		trace.WithAttributes(
			attribute.String("bootcampid", id.Hex())),
	)
	defer span.End()

	filter := bson.D{
		primitive.E{Key: "_id", Value: id},
	}

	delRes, err := m.Conn.Collection(domain.BootcampsCollection).DeleteOne(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("bootcamp delete error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if delRes.DeletedCount == 0 {
		err = fmt.Errorf("bootcamp was not deleted: %w", domain.ErrNoAffected)
		span.RecordError(err)
		return err
	}

	return nil
}

func (m *mongoBootcampRepository) SetAverageCost(ctx context.Context, id primitive.ObjectID, cost *float64) error {
	return m.setAverage(ctx, id, "averageCost", cost)
}

func (m *mongoBootcampRepository) SetAverageRating(ctx context.Context, id primitive.ObjectID, rating *float64) error {
	return m.setAverage(ctx, id, "averageRating", rating)
}

// setAverage writes value into field, nil value removes the field
func (m *mongoBootcampRepository) setAverage(ctx context.Context, id primitive.ObjectID, field string, value *float64) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository setAverage",
		trace.WithAttributes(
			attribute.String("bootcampid", id.Hex()),
			attribute.String("field", field)),
	)
	defer span.End()

	update := bson.D{primitive.E{Key: "$unset", Value: bson.D{primitive.E{Key: field, Value: ""}}}}
	if value != nil {
		update = bson.D{primitive.E{Key: "$set", Value: bson.D{primitive.E{Key: field, Value: *value}}}}
	}

	_, err := m.Conn.Collection(domain.BootcampsCollection).UpdateOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}}, update)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("bootcamp %s update error: %w: %s", field, domain.ErrInternalServerError, err.Error())
	}

	return nil
}
