package tests

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/web/auth"
)

// Fixture ids
var (
	UserID      = mustID("5d7a514b5d2c12c7449be042")
	PublisherID = mustID("5d7a514b5d2c12c7449be045")
	BootcampID  = mustID("5d713995b721c3bb38c1f5d0")
	CourseID    = mustID("5d725a4a7b292f5f8ceff789")
	ReviewID    = mustID("5d7a514b5d2c12c7449be020")
)

func mustID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

// StringPointer returns pointer of a string
func StringPointer(s string) *string {
	return &s
}

// FloatPointer returns pointer of a float64
func FloatPointer(f float64) *float64 {
	return &f
}

// BoolPointer returns pointer of a bool
func BoolPointer(b bool) *bool {
	return &b
}

// DatePointer returns pointer of a time.Time
func DatePointer(t time.Time) *time.Time {
	return &t
}

func now() time.Time {
	return time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
}

// NewClaims creates claims of a user with the given id and role
func NewClaims(id primitive.ObjectID, role string) *auth.Claims {
	return auth.NewClaims(id.Hex(), []string{role}, time.Now(), time.Hour)
}

// NewUser creates instance of User model
func NewUser() *domain.User {
	return &domain.User{
		ID:        UserID,
		Name:      "John Doe",
		Email:     "john@gmail.com",
		Role:      auth.RoleUser,
		Password:  "$2a$10$2iPnt444yuUBu8tSCm0iXOaGO2YYyTLVzGKr9LudAj7s.9m9iv7PS", // password
		CreatedAt: now(),
		UpdatedAt: now(),
	}
}

// NewUserBsonD creates bson document of the NewUser model
func NewUserBsonD() bson.D {
	u := NewUser()
	return bson.D{
		{Key: "_id", Value: u.ID},
		{Key: "name", Value: u.Name},
		{Key: "email", Value: u.Email},
		{Key: "role", Value: u.Role},
		{Key: "password", Value: u.Password},
		{Key: "isEmailConfirmed", Value: u.IsEmailConfirmed},
		{Key: "confirmEmailToken", Value: ""},
		{Key: "resetPasswordToken", Value: ""},
		{Key: "resetPasswordExpire", Value: nil},
		{Key: "createdAt", Value: u.CreatedAt},
		{Key: "updatedAt", Value: u.UpdatedAt},
	}
}

// NewBootcamp creates instance of Bootcamp model
func NewBootcamp() *domain.Bootcamp {
	return &domain.Bootcamp{
		ID:          BootcampID,
		Name:        "Devworks Bootcamp",
		Slug:        "devworks-bootcamp",
		Description: "Devworks is a full stack JavaScript Bootcamp located in the heart of Boston",
		Website:     "https://devworks.com",
		Phone:       "(111) 111-1111",
		Email:       "enroll@devworks.com",
		Location: &domain.Location{
			Type:             "Point",
			Coordinates:      []float64{-71.104028, 42.350846},
			FormattedAddress: "233 Bay State Rd, Boston, MA 02215, USA",
			Street:           "233 Bay State Rd",
			City:             "Boston",
			State:            "MA",
			Zipcode:          "02215",
			Country:          "US",
		},
		Careers:       []string{"Web Development", "UI/UX", "Business"},
		Photo:         domain.DefaultPhoto,
		Housing:       true,
		JobAssistance: true,
		User:          PublisherID,
		CreatedAt:     now(),
		UpdatedAt:     now(),
	}
}

// NewBootcampBsonD creates bson document of the NewBootcamp model
func NewBootcampBsonD() bson.D {
	b := NewBootcamp()
	return bson.D{
		{Key: "_id", Value: b.ID},
		{Key: "name", Value: b.Name},
		{Key: "slug", Value: b.Slug},
		{Key: "description", Value: b.Description},
		{Key: "website", Value: b.Website},
		{Key: "phone", Value: b.Phone},
		{Key: "email", Value: b.Email},
		{Key: "location", Value: bson.D{
			{Key: "type", Value: b.Location.Type},
			{Key: "coordinates", Value: bson.A{b.Location.Coordinates[0], b.Location.Coordinates[1]}},
			{Key: "formattedAddress", Value: b.Location.FormattedAddress},
			{Key: "street", Value: b.Location.Street},
			{Key: "city", Value: b.Location.City},
			{Key: "state", Value: b.Location.State},
			{Key: "zipcode", Value: b.Location.Zipcode},
			{Key: "country", Value: b.Location.Country},
		}},
		{Key: "careers", Value: bson.A{"Web Development", "UI/UX", "Business"}},
		{Key: "photo", Value: b.Photo},
		{Key: "housing", Value: b.Housing},
		{Key: "jobAssistance", Value: b.JobAssistance},
		{Key: "jobGuarantee", Value: b.JobGuarantee},
		{Key: "acceptGi", Value: b.AcceptGi},
		{Key: "user", Value: b.User},
		{Key: "createdAt", Value: b.CreatedAt},
		{Key: "updatedAt", Value: b.UpdatedAt},
	}
}

// NewCreateBootcamp creates instance of CreateBootcamp model
func NewCreateBootcamp() domain.CreateBootcamp {
	b := NewBootcamp()
	return domain.CreateBootcamp{
		Name:          b.Name,
		Description:   b.Description,
		Website:       b.Website,
		Phone:         b.Phone,
		Email:         b.Email,
		Address:       "233 Bay State Rd Boston MA 02215",
		Careers:       b.Careers,
		Housing:       b.Housing,
		JobAssistance: b.JobAssistance,
	}
}

// NewCourse creates instance of Course model
func NewCourse() *domain.Course {
	return &domain.Course{
		ID:                   CourseID,
		Title:                "Front End Web Development",
		Description:          "This course will provide you with all of the essentials to become a successful frontend web developer",
		Weeks:                "8",
		Tuition:              8000,
		MinimumSkill:         domain.SkillBeginner,
		ScholarshipAvailable: true,
		Bootcamp:             domain.BootcampRef{ID: BootcampID},
		User:                 PublisherID,
		CreatedAt:            now(),
		UpdatedAt:            now(),
	}
}

// NewCourseBsonD creates bson document of the NewCourse model
func NewCourseBsonD() bson.D {
	c := NewCourse()
	return bson.D{
		{Key: "_id", Value: c.ID},
		{Key: "title", Value: c.Title},
		{Key: "description", Value: c.Description},
		{Key: "weeks", Value: c.Weeks},
		{Key: "tuition", Value: c.Tuition},
		{Key: "minimumSkill", Value: c.MinimumSkill},
		{Key: "scholarshipAvailable", Value: c.ScholarshipAvailable},
		{Key: "bootcamp", Value: c.Bootcamp.ID},
		{Key: "user", Value: c.User},
		{Key: "createdAt", Value: c.CreatedAt},
		{Key: "updatedAt", Value: c.UpdatedAt},
	}
}

// NewCreateCourse creates instance of CreateCourse model
func NewCreateCourse() domain.CreateCourse {
	c := NewCourse()
	return domain.CreateCourse{
		Title:                c.Title,
		Description:          c.Description,
		Weeks:                c.Weeks,
		Tuition:              c.Tuition,
		MinimumSkill:         c.MinimumSkill,
		ScholarshipAvailable: c.ScholarshipAvailable,
	}
}

// NewReview creates instance of Review model
func NewReview() *domain.Review {
	return &domain.Review{
		ID:        ReviewID,
		Title:     "Learned a ton!",
		Text:      "I learned a lot at Devworks and landed a job right after",
		Rating:    8,
		Bootcamp:  domain.BootcampRef{ID: BootcampID},
		User:      UserID,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
}

// NewReviewBsonD creates bson document of the NewReview model
func NewReviewBsonD() bson.D {
	r := NewReview()
	return bson.D{
		{Key: "_id", Value: r.ID},
		{Key: "title", Value: r.Title},
		{Key: "text", Value: r.Text},
		{Key: "rating", Value: r.Rating},
		{Key: "bootcamp", Value: r.Bootcamp.ID},
		{Key: "user", Value: r.User},
		{Key: "createdAt", Value: r.CreatedAt},
		{Key: "updatedAt", Value: r.UpdatedAt},
	}
}

// NewCreateReview creates instance of CreateReview model
func NewCreateReview() domain.CreateReview {
	r := NewReview()
	return domain.CreateReview{
		Title:  r.Title,
		Text:   r.Text,
		Rating: r.Rating,
	}
}
