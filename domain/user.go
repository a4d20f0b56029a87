package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/web/auth"
)

// UsersCollection is the name of the user collection
const UsersCollection = "users"

// ResetPasswordTTL is how long a password reset token stays valid
const ResetPasswordTTL = 10 * time.Minute

// User represents the User model
type User struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id"`
	Name                string             `json:"name" bson:"name"`
	Email               string             `json:"email" bson:"email"`
	Role                string             `json:"role" bson:"role"`
	Password            string             `json:"-" bson:"password"`
	IsEmailConfirmed    bool               `json:"isEmailConfirmed" bson:"isEmailConfirmed"`
	ConfirmEmailToken   string             `json:"-" bson:"confirmEmailToken"`
	ResetPasswordToken  string             `json:"-" bson:"resetPasswordToken"`
	ResetPasswordExpire *time.Time         `json:"-" bson:"resetPasswordExpire"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UserSchema describes user fields for query translation
var UserSchema = query.Schema{
	"_id":              query.KindObjectID,
	"isEmailConfirmed": query.KindBool,
	"createdAt":        query.KindTime,
	"updatedAt":        query.KindTime,
}

// UserHiddenFields are never exposed to list queries
var UserHiddenFields = []string{"password", "confirmEmailToken", "resetPasswordToken", "resetPasswordExpire"}

// RegisterUser represents data to sign up
type RegisterUser struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher"`
}

// LoginUser represents login credentials
type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateDetails represents data the user can change in own profile
type UpdateDetails struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UpdatePassword represents data to change password of logged in user
type UpdatePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

// ForgotPassword represents data to request password reset
type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPassword represents data to set new password using reset token
type ResetPassword struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// CreateUser represents data to create new User by admin
type CreateUser struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher admin"`
}

// UpdateUser represents data to update User by admin
type UpdateUser struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=user publisher admin"`
}

// UserUsecase represents the User's usecases
type UserUsecase interface {
	Fetch(ctx context.Context, q query.Query) (*query.Result[User], error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user CreateUser) (*User, error)
	Update(ctx context.Context, id string, user UpdateUser) (*User, error)
	Delete(ctx context.Context, id string) error
}

// AuthUsecase represents authentication flows of the current user
type AuthUsecase interface {
	Register(ctx context.Context, user RegisterUser, baseURL string) (*auth.Claims, error)
	Login(ctx context.Context, now time.Time, credentials LoginUser) (*auth.Claims, error)
	Me(ctx context.Context, claims *auth.Claims) (*User, error)
	UpdateDetails(ctx context.Context, details UpdateDetails, claims *auth.Claims) (*User, error)
	UpdatePassword(ctx context.Context, now time.Time, passwords UpdatePassword, claims *auth.Claims) (*auth.Claims, error)
	ForgotPassword(ctx context.Context, email, baseURL string) error
	ResetPassword(ctx context.Context, now time.Time, token, password string) (*auth.Claims, error)
	ConfirmEmail(ctx context.Context, now time.Time, token string) (*auth.Claims, error)
}

// UserRepository represents the User's repository contract
type UserRepository interface {
	Fetch(ctx context.Context, q query.Query) (*query.Result[User], error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByResetToken(ctx context.Context, hashedToken string, now time.Time) (*User, error)
	GetByConfirmToken(ctx context.Context, hashedToken string) (*User, error)
	Update(ctx context.Context, user *User) error
	Create(ctx context.Context, user *User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Message is a plain text email
type Message struct {
	To      string
	Subject string
	Text    string
}

// Mailer delivers transactional email
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
