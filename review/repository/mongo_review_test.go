package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/review/repository"
	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/tests"
)

var tracer = sdktrace.NewTracerProvider().Tracer("")
var noopCtx = context.Background()

const tableName = "devcamper.reviews"

func serverError() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   1,
		Code:    123,
		Message: "server error",
	})
}

func TestMongoReviewRepository_Fetch(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("bootcamp resolved", func(mt *mtest.T) {
		doc := tests.NewReviewBsonD()
		for i := range doc {
			if doc[i].Key == "bootcamp" {
				doc[i].Value = bson.D{
					{Key: "_id", Value: tests.BootcampID},
					{Key: "name", Value: "Devworks Bootcamp"},
					{Key: "description", Value: "Full stack"},
				}
			}
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, tableName, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
			mtest.CreateCursorResponse(1, tableName, mtest.FirstBatch, doc),
			mtest.CreateCursorResponse(0, tableName, mtest.NextBatch),
		)
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		result, err := r.Fetch(noopCtx, query.Query{Page: 1, Limit: 25, Sort: []query.SortField{{Field: "createdAt", Desc: true}}})

		require.NoError(mt, err)
		require.Len(mt, result.Data, 1)
		assert.True(mt, result.Data[0].Bootcamp.Resolved())
		assert.Equal(mt, "Devworks Bootcamp", result.Data[0].Bootcamp.Name)

		mt.GetStartedEvent()
		pipeline := mt.GetStartedEvent().Command.Lookup("pipeline")
		assert.Contains(mt, pipeline.String(), `"$lookup"`)
	})

	mt.Run("bad filter", func(mt *mtest.T) {
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		q, err := query.Parse(map[string][]string{"rating[gt]": {"high"}})
		require.NoError(mt, err)
		result, err := r.Fetch(noopCtx, q)

		assert.Nil(mt, result)
		assert.ErrorIs(mt, err, domain.ErrBadParamInput)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(serverError())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		result, err := r.Fetch(noopCtx, query.Query{Page: 1, Limit: 25})

		assert.Nil(mt, result)
		assert.ErrorIs(mt, err, domain.ErrInternalServerError)
	})
}

func TestMongoReviewRepository_FetchByBootcamp(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, tableName, mtest.FirstBatch, tests.NewReviewBsonD()),
			mtest.CreateCursorResponse(0, tableName, mtest.NextBatch),
		)
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		result, err := r.FetchByBootcamp(noopCtx, tests.BootcampID)

		require.NoError(mt, err)
		require.Len(mt, result, 1)
		assert.EqualValues(mt, tests.NewReview(), result[0])
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(serverError())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		result, err := r.FetchByBootcamp(noopCtx, tests.BootcampID)

		assert.Nil(mt, result)
		assert.ErrorIs(mt, err, domain.ErrInternalServerError)
	})
}

func TestMongoReviewRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	tReview := tests.NewReview()

	mt.Run("not exists", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, tableName, mtest.FirstBatch),
			mtest.CreateCursorResponse(0, tableName, mtest.NextBatch),
		)
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		result, err := r.GetByID(noopCtx, tReview.ID)

		assert.Nil(mt, result)
		assert.ErrorIs(mt, err, domain.ErrNotFound)
		assert.Contains(mt, err.Error(), tReview.ID.Hex())
	})

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, tableName, mtest.FirstBatch, tests.NewReviewBsonD()),
			mtest.CreateCursorResponse(0, tableName, mtest.NextBatch),
		)
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		result, err := r.GetByID(noopCtx, tReview.ID)

		require.NoError(mt, err)
		assert.EqualValues(mt, tReview, result)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(serverError())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		result, err := r.GetByID(noopCtx, tReview.ID)

		assert.Nil(mt, result)
		assert.ErrorIs(mt, err, domain.ErrInternalServerError)
	})
}

func TestMongoReviewRepository_Store(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	tReview := tests.NewReview()

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Store(noopCtx, tReview)
		require.NoError(mt, err)

		doc := mt.GetStartedEvent().Command.Lookup("documents", "0").Document()
		assert.Equal(mt, tests.BootcampID, doc.Lookup("bootcamp").ObjectID())
	})

	mt.Run("second review of the same bootcamp", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: devcamper.reviews index: bootcamp_user_unique",
		}))
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Store(noopCtx, tReview)

		assert.ErrorIs(mt, err, domain.ErrConflict)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(serverError())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Store(noopCtx, tReview)

		assert.ErrorIs(mt, err, domain.ErrInternalServerError)
	})
}

func TestMongoReviewRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	tReview := tests.NewReview()

	mt.Run("not exists", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 0},
			{Key: "nModified", Value: 0},
		})
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Update(noopCtx, tReview)

		assert.ErrorIs(mt, err, domain.ErrNoAffected)
	})

	mt.Run("same values", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 1},
			{Key: "nModified", Value: 0},
		})
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Update(noopCtx, tReview)

		require.NoError(mt, err)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(serverError())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Update(noopCtx, tReview)

		assert.ErrorIs(mt, err, domain.ErrInternalServerError)
	})
}

func TestMongoReviewRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "acknowledged", Value: true},
			{Key: "n", Value: 0},
		})
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Delete(noopCtx, tests.ReviewID)

		assert.ErrorIs(mt, err, domain.ErrNoAffected)
	})

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "acknowledged", Value: true},
			{Key: "n", Value: 1},
		})
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Delete(noopCtx, tests.ReviewID)

		require.NoError(mt, err)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(serverError())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		err := r.Delete(noopCtx, tests.ReviewID)

		assert.ErrorIs(mt, err, domain.ErrInternalServerError)
	})
}

func TestMongoReviewRepository_DeleteByBootcamp(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "acknowledged", Value: true},
			{Key: "n", Value: 3},
		})
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		n, err := r.DeleteByBootcamp(noopCtx, tests.BootcampID)

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(serverError())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		_, err := r.DeleteByBootcamp(noopCtx, tests.BootcampID)

		assert.ErrorIs(mt, err, domain.ErrInternalServerError)
	})
}

func TestMongoReviewRepository_AverageRating(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("two reviews", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, tableName, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: tests.BootcampID},
			{Key: "average", Value: 7.5},
		}))
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		avg, err := r.AverageRating(noopCtx, tests.BootcampID)

		require.NoError(mt, err)
		require.NotNil(mt, avg)
		assert.Equal(mt, 7.5, *avg)
	})

	mt.Run("no reviews", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, tableName, mtest.FirstBatch))
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		avg, err := r.AverageRating(noopCtx, tests.BootcampID)

		require.NoError(mt, err)
		assert.Nil(mt, avg)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(serverError())
		r := repository.NewMongoReviewRepository(mt.Client, mt.DB.Name(), zap.NewNop(), tracer)

		avg, err := r.AverageRating(noopCtx, tests.BootcampID)

		assert.Nil(mt, avg)
		assert.ErrorIs(mt, err, domain.ErrInternalServerError)
	})
}
