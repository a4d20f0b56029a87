package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/average"
	averageMock "github.com/semka95/devcamper/average/mock"
	bootcampMock "github.com/semka95/devcamper/bootcamp/mock"
	courseMock "github.com/semka95/devcamper/course/mock"
	"github.com/semka95/devcamper/course/usecase"
	"github.com/semka95/devcamper/domain"
	reviewMock "github.com/semka95/devcamper/review/mock"
	"github.com/semka95/devcamper/tests"
	"github.com/semka95/devcamper/web/auth"
)

var tracer = sdktrace.NewTracerProvider().Tracer("")

type mocks struct {
	courses   *courseMock.MockCourseRepository
	bootcamps *bootcampMock.MockBootcampRepository
	averages  *averageMock.MockAverageRefresher
}

func newUsecase(t *testing.T) (domain.CourseUsecase, mocks) {
	controller := gomock.NewController(t)
	m := mocks{
		courses:   courseMock.NewMockCourseRepository(controller),
		bootcamps: bootcampMock.NewMockBootcampRepository(controller),
		averages:  averageMock.NewMockAverageRefresher(controller),
	}
	return usecase.NewCourseUsecase(m.courses, m.bootcamps, m.averages, 10*time.Second, tracer), m
}

func TestCourseUsecase_FetchByBootcamp(t *testing.T) {
	uc, m := newUsecase(t)

	t.Run("not valid id", func(t *testing.T) {
		result, err := uc.FetchByBootcamp(context.Background(), "bad")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		assert.Nil(t, result)
	})

	t.Run("success", func(t *testing.T) {
		list := []*domain.Course{tests.NewCourse()}
		m.courses.EXPECT().FetchByBootcamp(gomock.Any(), tests.BootcampID).Return(list, nil)
		result, err := uc.FetchByBootcamp(context.Background(), tests.BootcampID.Hex())
		require.NoError(t, err)
		assert.Equal(t, list, result)
	})
}

func TestCourseUsecase_GetByID(t *testing.T) {
	uc, m := newUsecase(t)

	t.Run("not found", func(t *testing.T) {
		m.courses.EXPECT().GetByID(gomock.Any(), tests.CourseID).Return(nil, domain.ErrNotFound)
		result, err := uc.GetByID(context.Background(), tests.CourseID.Hex())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, result)
	})

	t.Run("bootcamp resolved", func(t *testing.T) {
		m.courses.EXPECT().GetByID(gomock.Any(), tests.CourseID).Return(tests.NewCourse(), nil)
		m.bootcamps.EXPECT().GetByID(gomock.Any(), tests.BootcampID).Return(tests.NewBootcamp(), nil)

		result, err := uc.GetByID(context.Background(), tests.CourseID.Hex())

		require.NoError(t, err)
		assert.True(t, result.Bootcamp.Resolved())
		assert.Equal(t, tests.NewBootcamp().Name, result.Bootcamp.Name)
	})

	t.Run("bootcamp is gone", func(t *testing.T) {
		m.courses.EXPECT().GetByID(gomock.Any(), tests.CourseID).Return(tests.NewCourse(), nil)
		m.bootcamps.EXPECT().GetByID(gomock.Any(), tests.BootcampID).Return(nil, domain.ErrNotFound)

		result, err := uc.GetByID(context.Background(), tests.CourseID.Hex())

		require.NoError(t, err)
		assert.False(t, result.Bootcamp.Resolved())
	})
}

func TestCourseUsecase_Store(t *testing.T) {
	uc, m := newUsecase(t)
	tCreate := tests.NewCreateCourse()
	owner := tests.NewClaims(tests.PublisherID, auth.RolePublisher)
	stranger := tests.NewClaims(tests.UserID, auth.RolePublisher)

	t.Run("bootcamp not found", func(t *testing.T) {
		m.bootcamps.EXPECT().GetByID(gomock.Any(), tests.BootcampID).Return(nil, domain.ErrNotFound)
		result, err := uc.Store(context.Background(), tests.BootcampID.Hex(), tCreate, owner)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, result)
	})

	t.Run("not bootcamp owner", func(t *testing.T) {
		m.bootcamps.EXPECT().GetByID(gomock.Any(), tests.BootcampID).Return(tests.NewBootcamp(), nil)
		result, err := uc.Store(context.Background(), tests.BootcampID.Hex(), tCreate, stranger)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, result)
	})

	t.Run("success refreshes average cost", func(t *testing.T) {
		gomock.InOrder(
			m.bootcamps.EXPECT().GetByID(gomock.Any(), tests.BootcampID).Return(tests.NewBootcamp(), nil),
			m.courses.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil),
			m.averages.EXPECT().RefreshAverageCost(gomock.Any(), tests.BootcampID),
		)

		result, err := uc.Store(context.Background(), tests.BootcampID.Hex(), tCreate, owner)

		require.NoError(t, err)
		assert.Equal(t, tests.BootcampID, result.Bootcamp.ID)
		assert.Equal(t, tests.PublisherID, result.User)
		assert.Equal(t, tCreate.Tuition, result.Tuition)
	})

	t.Run("store error skips refresh", func(t *testing.T) {
		m.bootcamps.EXPECT().GetByID(gomock.Any(), tests.BootcampID).Return(tests.NewBootcamp(), nil)
		m.courses.EXPECT().Store(gomock.Any(), gomock.Any()).Return(domain.ErrInternalServerError)

		result, err := uc.Store(context.Background(), tests.BootcampID.Hex(), tCreate, owner)

		assert.ErrorIs(t, err, domain.ErrInternalServerError)
		assert.Nil(t, result)
	})
}

func TestCourseUsecase_Update(t *testing.T) {
	uc, m := newUsecase(t)
	owner := tests.NewClaims(tests.PublisherID, auth.RolePublisher)

	t.Run("another user's course is left unchanged", func(t *testing.T) {
		stranger := tests.NewClaims(tests.UserID, auth.RolePublisher)
		m.courses.EXPECT().GetByID(gomock.Any(), tests.CourseID).Return(tests.NewCourse(), nil)

		result, err := uc.Update(context.Background(), tests.CourseID.Hex(), domain.UpdateCourse{
			Tuition: tests.FloatPointer(1),
		}, stranger)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, result)
	})

	t.Run("title change keeps average", func(t *testing.T) {
		m.courses.EXPECT().GetByID(gomock.Any(), tests.CourseID).Return(tests.NewCourse(), nil)
		m.courses.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		result, err := uc.Update(context.Background(), tests.CourseID.Hex(), domain.UpdateCourse{
			Title:   tests.StringPointer("Full Stack"),
			Tuition: tests.FloatPointer(tests.NewCourse().Tuition),
		}, owner)

		require.NoError(t, err)
		assert.Equal(t, "Full Stack", result.Title)
	})

	t.Run("tuition change refreshes average", func(t *testing.T) {
		m.courses.EXPECT().GetByID(gomock.Any(), tests.CourseID).Return(tests.NewCourse(), nil)
		m.courses.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.averages.EXPECT().RefreshAverageCost(gomock.Any(), tests.BootcampID)

		result, err := uc.Update(context.Background(), tests.CourseID.Hex(), domain.UpdateCourse{
			Tuition: tests.FloatPointer(9000),
		}, tests.NewClaims(tests.UserID, auth.RoleAdmin))

		require.NoError(t, err)
		assert.Equal(t, 9000.0, result.Tuition)
	})
}

func TestCourseUsecase_Delete(t *testing.T) {
	uc, m := newUsecase(t)
	owner := tests.NewClaims(tests.PublisherID, auth.RolePublisher)

	t.Run("not valid id", func(t *testing.T) {
		err := uc.Delete(context.Background(), "bad", owner)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("forbidden", func(t *testing.T) {
		m.courses.EXPECT().GetByID(gomock.Any(), tests.CourseID).Return(tests.NewCourse(), nil)
		err := uc.Delete(context.Background(), tests.CourseID.Hex(), tests.NewClaims(tests.UserID, auth.RoleUser))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("success refreshes average cost", func(t *testing.T) {
		gomock.InOrder(
			m.courses.EXPECT().GetByID(gomock.Any(), tests.CourseID).Return(tests.NewCourse(), nil),
			m.courses.EXPECT().Delete(gomock.Any(), tests.CourseID).Return(nil),
			m.averages.EXPECT().RefreshAverageCost(gomock.Any(), tests.BootcampID),
		)

		err := uc.Delete(context.Background(), tests.CourseID.Hex(), owner)

		require.NoError(t, err)
	})
}

func TestCourseUsecase_StoreThenDeleteRestoresAverageCost(t *testing.T) {
	controller := gomock.NewController(t)
	courses := courseMock.NewMockCourseRepository(controller)
	bootcamps := bootcampMock.NewMockBootcampRepository(controller)
	maintainer := average.NewMaintainer(bootcamps, courses, reviewMock.NewMockReviewRepository(controller), zap.NewNop(), tracer)
	uc := usecase.NewCourseUsecase(courses, bootcamps, maintainer, 10*time.Second, tracer)

	owner := tests.NewClaims(tests.PublisherID, auth.RolePublisher)
	prior := tests.FloatPointer(8000)
	var stored *domain.Course

	gomock.InOrder(
		bootcamps.EXPECT().GetByID(gomock.Any(), tests.BootcampID).Return(tests.NewBootcamp(), nil),
		courses.EXPECT().Store(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Course) error {
			stored = c
			return nil
		}),
		courses.EXPECT().AverageTuition(gomock.Any(), tests.BootcampID).Return(tests.FloatPointer(9000), nil),
		bootcamps.EXPECT().SetAverageCost(gomock.Any(), tests.BootcampID, tests.FloatPointer(9000)).Return(nil),

		courses.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id primitive.ObjectID) (*domain.Course, error) {
			return stored, nil
		}),
		courses.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
		courses.EXPECT().AverageTuition(gomock.Any(), tests.BootcampID).Return(prior, nil),
		bootcamps.EXPECT().SetAverageCost(gomock.Any(), tests.BootcampID, prior).Return(nil),
	)

	created, err := uc.Store(context.Background(), tests.BootcampID.Hex(), tests.NewCreateCourse(), owner)
	require.NoError(t, err)

	err = uc.Delete(context.Background(), created.ID.Hex(), owner)
	require.NoError(t, err)
}
