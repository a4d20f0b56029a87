package domain

import (
	"context"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/web/auth"
)

// Careers a bootcamp can teach
var Careers = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX",
	"Data Science",
	"Business",
	"Other",
}

// DefaultPhoto is used until bootcamp photo is uploaded
const DefaultPhoto = "no-photo.jpg"

// EarthRadiusMiles is used to convert search distance to radians
const EarthRadiusMiles = 3963.0

// BootcampsCollection is the name of the bootcamp collection
const BootcampsCollection = "bootcamps"

// Location represents the geocoded GeoJSON point of a bootcamp
type Location struct {
	Type             string    `json:"type" bson:"type"`
	Coordinates      []float64 `json:"coordinates" bson:"coordinates"`
	FormattedAddress string    `json:"formattedAddress" bson:"formattedAddress"`
	Street           string    `json:"street" bson:"street"`
	City             string    `json:"city" bson:"city"`
	State            string    `json:"state" bson:"state"`
	Zipcode          string    `json:"zipcode" bson:"zipcode"`
	Country          string    `json:"country" bson:"country"`
}

// Bootcamp represents the Bootcamp model
type Bootcamp struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Slug          string             `json:"slug" bson:"slug"`
	Description   string             `json:"description" bson:"description"`
	Website       string             `json:"website,omitempty" bson:"website,omitempty"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	Location      *Location          `json:"location,omitempty" bson:"location,omitempty"`
	Careers       []string           `json:"careers" bson:"careers"`
	AverageRating *float64           `json:"averageRating,omitempty" bson:"averageRating,omitempty"`
	AverageCost   *float64           `json:"averageCost,omitempty" bson:"averageCost,omitempty"`
	Photo         string             `json:"photo" bson:"photo"`
	Housing       bool               `json:"housing" bson:"housing"`
	JobAssistance bool               `json:"jobAssistance" bson:"jobAssistance"`
	JobGuarantee  bool               `json:"jobGuarantee" bson:"jobGuarantee"`
	AcceptGi      bool               `json:"acceptGi" bson:"acceptGi"`
	User          primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OwnerID returns id of the user who published the bootcamp
func (b Bootcamp) OwnerID() string {
	return b.User.Hex()
}

// BootcampSchema describes bootcamp fields for query translation
var BootcampSchema = query.Schema{
	"_id":           query.KindObjectID,
	"averageRating": query.KindNumber,
	"averageCost":   query.KindNumber,
	"housing":       query.KindBool,
	"jobAssistance": query.KindBool,
	"jobGuarantee":  query.KindBool,
	"acceptGi":      query.KindBool,
	"user":          query.KindObjectID,
	"createdAt":     query.KindTime,
	"updatedAt":     query.KindTime,
}

// CreateBootcamp represents data to create new Bootcamp
type CreateBootcamp struct {
	Name          string   `json:"name" validate:"required,max=50"`
	Description   string   `json:"description" validate:"required,max=500"`
	Website       string   `json:"website" validate:"omitempty,url,startswith=http"`
	Phone         string   `json:"phone" validate:"omitempty,max=20"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Address       string   `json:"address" validate:"required"`
	Careers       []string `json:"careers" validate:"required,min=1,dive,career"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

// UpdateBootcamp represents data to update Bootcamp
type UpdateBootcamp struct {
	Name          *string  `json:"name" validate:"omitempty,max=50"`
	Description   *string  `json:"description" validate:"omitempty,max=500"`
	Website       *string  `json:"website" validate:"omitempty,url,startswith=http"`
	Phone         *string  `json:"phone" validate:"omitempty,max=20"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	Address       *string  `json:"address" validate:"omitempty,min=1"`
	Careers       []string `json:"careers" validate:"omitempty,min=1,dive,career"`
	Housing       *bool    `json:"housing"`
	JobAssistance *bool    `json:"jobAssistance"`
	JobGuarantee  *bool    `json:"jobGuarantee"`
	AcceptGi      *bool    `json:"acceptGi"`
}

// BootcampUsecase represents the Bootcamp's usecases
type BootcampUsecase interface {
	Fetch(ctx context.Context, q query.Query) (*query.Result[Bootcamp], error)
	GetByID(ctx context.Context, id string) (*Bootcamp, error)
	GetInRadius(ctx context.Context, zipcode string, distance float64) ([]*Bootcamp, error)
	Store(ctx context.Context, bootcamp CreateBootcamp, claims *auth.Claims) (*Bootcamp, error)
	Update(ctx context.Context, id string, bootcamp UpdateBootcamp, claims *auth.Claims) (*Bootcamp, error)
	Delete(ctx context.Context, id string, claims *auth.Claims) error
	UploadPhoto(ctx context.Context, id string, file *multipart.FileHeader, claims *auth.Claims) (*Bootcamp, error)
}

// BootcampRepository represents the Bootcamp's repository contract
type BootcampRepository interface {
	Fetch(ctx context.Context, q query.Query) (*query.Result[Bootcamp], error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Bootcamp, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	GetInRadius(ctx context.Context, lng, lat, radius float64) ([]*Bootcamp, error)
	Store(ctx context.Context, bootcamp *Bootcamp) error
	Update(ctx context.Context, bootcamp *Bootcamp) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetAverageCost(ctx context.Context, id primitive.ObjectID, cost *float64) error
	SetAverageRating(ctx context.Context, id primitive.ObjectID, rating *float64) error
}

// Geocoder resolves free-text addresses into locations
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}

// PhotoStore validates and keeps uploaded bootcamp photos
type PhotoStore interface {
	Save(ctx context.Context, bootcampID string, file *multipart.FileHeader) (string, error)
}

// AverageRefresher recomputes bootcamp aggregate fields after child mutations
type AverageRefresher interface {
	RefreshAverageCost(ctx context.Context, bootcampID primitive.ObjectID)
	RefreshAverageRating(ctx context.Context, bootcampID primitive.ObjectID)
}
