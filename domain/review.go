package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/web/auth"
)

// ReviewsCollection is the name of the review collection
const ReviewsCollection = "reviews"

// Review represents the Review model
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Text      string             `json:"text" bson:"text"`
	Rating    float64            `json:"rating" bson:"rating"`
	Bootcamp  BootcampRef        `json:"bootcamp" bson:"bootcamp"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OwnerID returns id of the user who wrote the review
func (r Review) OwnerID() string {
	return r.User.Hex()
}

// ReviewSchema describes review fields for query translation
var ReviewSchema = query.Schema{
	"_id":       query.KindObjectID,
	"rating":    query.KindNumber,
	"bootcamp":  query.KindObjectID,
	"user":      query.KindObjectID,
	"createdAt": query.KindTime,
	"updatedAt": query.KindTime,
}

// CreateReview represents data to create new Review
type CreateReview struct {
	Title  string  `json:"title" validate:"required,max=100"`
	Text   string  `json:"text" validate:"required"`
	Rating float64 `json:"rating" validate:"required,min=1,max=10"`
}

// UpdateReview represents data to update Review
type UpdateReview struct {
	Title  *string  `json:"title" validate:"omitempty,max=100"`
	Text   *string  `json:"text" validate:"omitempty,min=1"`
	Rating *float64 `json:"rating" validate:"omitempty,min=1,max=10"`
}

// ReviewUsecase represents the Review's usecases
type ReviewUsecase interface {
	Fetch(ctx context.Context, q query.Query) (*query.Result[Review], error)
	FetchByBootcamp(ctx context.Context, bootcampID string) ([]*Review, error)
	GetByID(ctx context.Context, id string) (*Review, error)
	Store(ctx context.Context, bootcampID string, review CreateReview, claims *auth.Claims) (*Review, error)
	Update(ctx context.Context, id string, review UpdateReview, claims *auth.Claims) (*Review, error)
	Delete(ctx context.Context, id string, claims *auth.Claims) error
}

// ReviewRepository represents the Review's repository contract
type ReviewRepository interface {
	Fetch(ctx context.Context, q query.Query) (*query.Result[Review], error)
	FetchByBootcamp(ctx context.Context, bootcampID primitive.ObjectID) ([]*Review, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Review, error)
	Store(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByBootcamp(ctx context.Context, bootcampID primitive.ObjectID) (int64, error)
	AverageRating(ctx context.Context, bootcampID primitive.ObjectID) (*float64, error)
}
