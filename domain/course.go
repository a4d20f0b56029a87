package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/web/auth"
)

// CoursesCollection is the name of the course collection
const CoursesCollection = "courses"

// Skill levels a course can require
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// Course represents the Course model
type Course struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id"`
	Title                string             `json:"title" bson:"title"`
	Description          string             `json:"description" bson:"description"`
	Weeks                string             `json:"weeks" bson:"weeks"`
	Tuition              float64            `json:"tuition" bson:"tuition"`
	MinimumSkill         string             `json:"minimumSkill" bson:"minimumSkill"`
	ScholarshipAvailable bool               `json:"scholarshipAvailable" bson:"scholarshipAvailable"`
	Bootcamp             BootcampRef        `json:"bootcamp" bson:"bootcamp"`
	User                 primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OwnerID returns id of the user who added the course
func (c Course) OwnerID() string {
	return c.User.Hex()
}

// CourseSchema describes course fields for query translation
var CourseSchema = query.Schema{
	"_id":                  query.KindObjectID,
	"tuition":              query.KindNumber,
	"scholarshipAvailable": query.KindBool,
	"bootcamp":             query.KindObjectID,
	"user":                 query.KindObjectID,
	"createdAt":            query.KindTime,
	"updatedAt":            query.KindTime,
}

// CreateCourse represents data to create new Course
type CreateCourse struct {
	Title                string  `json:"title" validate:"required,max=100"`
	Description          string  `json:"description" validate:"required"`
	Weeks                string  `json:"weeks" validate:"required"`
	Tuition              float64 `json:"tuition" validate:"required,gte=0"`
	MinimumSkill         string  `json:"minimumSkill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool    `json:"scholarshipAvailable"`
}

// UpdateCourse represents data to update Course
type UpdateCourse struct {
	Title                *string  `json:"title" validate:"omitempty,max=100"`
	Description          *string  `json:"description" validate:"omitempty,min=1"`
	Weeks                *string  `json:"weeks" validate:"omitempty,min=1"`
	Tuition              *float64 `json:"tuition" validate:"omitempty,gte=0"`
	MinimumSkill         *string  `json:"minimumSkill" validate:"omitempty,oneof=beginner intermediate advanced"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}

// CourseUsecase represents the Course's usecases
type CourseUsecase interface {
	Fetch(ctx context.Context, q query.Query) (*query.Result[Course], error)
	FetchByBootcamp(ctx context.Context, bootcampID string) ([]*Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	Store(ctx context.Context, bootcampID string, course CreateCourse, claims *auth.Claims) (*Course, error)
	Update(ctx context.Context, id string, course UpdateCourse, claims *auth.Claims) (*Course, error)
	Delete(ctx context.Context, id string, claims *auth.Claims) error
}

// CourseRepository represents the Course's repository contract
type CourseRepository interface {
	Fetch(ctx context.Context, q query.Query) (*query.Result[Course], error)
	FetchByBootcamp(ctx context.Context, bootcampID primitive.ObjectID) ([]*Course, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Course, error)
	Store(ctx context.Context, course *Course) error
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByBootcamp(ctx context.Context, bootcampID primitive.ObjectID) (int64, error)
	AverageTuition(ctx context.Context, bootcampID primitive.ObjectID) (*float64, error)
}
