package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/web/auth"
)

const tokenBytes = 20

type authUsecase struct {
	userRepo       domain.UserRepository
	mailer         domain.Mailer
	tokenTTL       time.Duration
	contextTimeout time.Duration
	logger         *zap.Logger
	tracer         trace.Tracer
}

// NewAuthUsecase will create new an authUsecase object representation of domain.AuthUsecase interface
func NewAuthUsecase(u domain.UserRepository, m domain.Mailer, tokenTTL, timeout time.Duration, logger *zap.Logger, tracer trace.Tracer) domain.AuthUsecase {
	return &authUsecase{
		userRepo:       u,
		mailer:         m,
		tokenTTL:       tokenTTL,
		contextTimeout: timeout,
		logger:         logger,
		tracer:         tracer,
	}
}

func (ac *authUsecase) claims(u *domain.User, now time.Time) *auth.Claims {
	return auth.NewClaims(u.ID.Hex(), []string{u.Role}, now, ac.tokenTTL)
}

func (ac *authUsecase) Register(c context.Context, m domain.RegisterUser, baseURL string) (*auth.Claims, error) {
	ctx, cancel := context.WithTimeout(c, ac.contextTimeout)
	defer cancel()

	ctx, span := ac.tracer.Start(
		ctx,
		"usecase Register",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	hashedPwd, err := generateHash(m.Password)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("can't generate hash from password: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	confirmToken, hashedConfirmToken, err := newToken()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	role := m.Role
	if role == "" {
		role = auth.RoleUser
	}

	now := time.Now().Truncate(time.Millisecond).UTC()
	u := &domain.User{
		ID:                primitive.NewObjectID(),
		Name:              m.Name,
		Email:             m.Email,
		Role:              role,
		Password:          hashedPwd,
		ConfirmEmailToken: hashedConfirmToken,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	span.SetAttributes(attribute.String("userid", u.ID.Hex()))

	if err = ac.userRepo.Create(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = ac.mailer.Send(ctx, domain.Message{
		To:      u.Email,
		Subject: "Email confirmation token",
		Text: "You are receiving this email because you need to confirm your email address. Please make a GET request to: \n\n" +
			baseURL + "/v1/auth/confirmEmail?token=" + confirmToken,
	})
	if err != nil {
		// account is usable without confirmation
		span.RecordError(err)
		ac.logger.Error("can't send confirmation email", zap.String("userid", u.ID.Hex()), zap.Error(err))
	}

	return ac.claims(u, now), nil
}

func (ac *authUsecase) Login(c context.Context, now time.Time, m domain.LoginUser) (*auth.Claims, error) {
	ctx, cancel := context.WithTimeout(c, ac.contextTimeout)
	defer cancel()

	ctx, span := ac.tracer.Start(
		ctx,
		"usecase Login",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	u, err := ac.userRepo.GetByEmail(ctx, m.Email)
	if errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrAuthenticationFailure)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("userid", u.ID.Hex()))

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(m.Password)); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrAuthenticationFailure)
	}

	return ac.claims(u, now), nil
}

// current loads the user the claims belong to
func (ac *authUsecase) current(ctx context.Context, claims *auth.Claims) (*domain.User, error) {
	objID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("user ID is not valid ObjectID: %w: %s", domain.ErrAuthenticationFailure, err.Error())
	}

	return ac.userRepo.GetByID(ctx, objID)
}

func (ac *authUsecase) Me(c context.Context, claims *auth.Claims) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(c, ac.contextTimeout)
	defer cancel()

	ctx, span := ac.tracer.Start(
		ctx,
		"usecase Me",
		trace.WithAttributes(
			attribute.String("userid", claims.Subject)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	u, err := ac.current(ctx, claims)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return u, nil
}

func (ac *authUsecase) UpdateDetails(c context.Context, m domain.UpdateDetails, claims *auth.Claims) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(c, ac.contextTimeout)
	defer cancel()

	ctx, span := ac.tracer.Start(
		ctx,
		"usecase UpdateDetails",
		trace.WithAttributes(
			attribute.String("userid", claims.Subject)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	u, err := ac.current(ctx, claims)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if m.Name != nil {
		u.Name = *m.Name
	}
	if m.Email != nil {
		u.Email = *m.Email
	}
	u.UpdatedAt = time.Now().Truncate(time.Millisecond).UTC()

	if err = ac.userRepo.Update(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return u, nil
}

func (ac *authUsecase) UpdatePassword(c context.Context, now time.Time, m domain.UpdatePassword, claims *auth.Claims) (*auth.Claims, error) {
	ctx, cancel := context.WithTimeout(c, ac.contextTimeout)
	defer cancel()

	ctx, span := ac.tracer.Start(
		ctx,
		"usecase UpdatePassword",
		trace.WithAttributes(
			attribute.String("userid", claims.Subject)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	u, err := ac.current(ctx, claims)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(m.CurrentPassword)); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("password is incorrect: %w", domain.ErrAuthenticationFailure)
	}

	hashedPwd, err := generateHash(m.NewPassword)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("can't generate hash from password: %w: %s", domain.ErrInternalServerError, err.Error())
	}
	u.Password = hashedPwd
	u.UpdatedAt = now.Truncate(time.Millisecond).UTC()

	if err = ac.userRepo.Update(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return ac.claims(u, now), nil
}

func (ac *authUsecase) ForgotPassword(c context.Context, email, baseURL string) error {
	ctx, cancel := context.WithTimeout(c, ac.contextTimeout)
	defer cancel()

	ctx, span := ac.tracer.Start(
		ctx,
		"usecase ForgotPassword",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	u, err := ac.userRepo.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.String("userid", u.ID.Hex()))

	resetToken, hashedResetToken, err := newToken()
	if err != nil {
		span.RecordError(err)
		return err
	}

	expire := time.Now().Add(domain.ResetPasswordTTL).Truncate(time.Millisecond).UTC()
	u.ResetPasswordToken = hashedResetToken
	u.ResetPasswordExpire = &expire

	if err = ac.userRepo.Update(ctx, u); err != nil {
		span.RecordError(err)
		return err
	}

	err = ac.mailer.Send(ctx, domain.Message{
		To:      u.Email,
		Subject: "Password reset token",
		Text: "You are receiving this email because you (or someone else) has requested the reset of a password. Please make a PUT request to: \n\n" +
			baseURL + "/v1/auth/resetpassword/" + resetToken,
	})
	if err == nil {
		return nil
	}
	span.RecordError(err)

	u.ResetPasswordToken = ""
	u.ResetPasswordExpire = nil
	if uerr := ac.userRepo.Update(ctx, u); uerr != nil {
		ac.logger.Error("can't clear reset token", zap.String("userid", u.ID.Hex()), zap.Error(uerr))
	}

	return fmt.Errorf("email could not be sent: %w: %s", domain.ErrInternalServerError, err.Error())
}

func (ac *authUsecase) ResetPassword(c context.Context, now time.Time, token, password string) (*auth.Claims, error) {
	ctx, cancel := context.WithTimeout(c, ac.contextTimeout)
	defer cancel()

	ctx, span := ac.tracer.Start(
		ctx,
		"usecase ResetPassword",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	u, err := ac.userRepo.GetByResetToken(ctx, hashToken(token), now)
	if errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		return nil, fmt.Errorf("invalid token: %w", domain.ErrBadParamInput)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("userid", u.ID.Hex()))

	hashedPwd, err := generateHash(password)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("can't generate hash from password: %w: %s", domain.ErrInternalServerError, err.Error())
	}
	u.Password = hashedPwd
	u.ResetPasswordToken = ""
	u.ResetPasswordExpire = nil
	u.UpdatedAt = now.Truncate(time.Millisecond).UTC()

	if err = ac.userRepo.Update(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return ac.claims(u, now), nil
}

func (ac *authUsecase) ConfirmEmail(c context.Context, now time.Time, token string) (*auth.Claims, error) {
	ctx, cancel := context.WithTimeout(c, ac.contextTimeout)
	defer cancel()

	ctx, span := ac.tracer.Start(
		ctx,
		"usecase ConfirmEmail",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	if token == "" {
		err := fmt.Errorf("invalid token: %w", domain.ErrBadParamInput)
		span.RecordError(err)
		return nil, err
	}

	u, err := ac.userRepo.GetByConfirmToken(ctx, hashToken(token))
	if errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		return nil, fmt.Errorf("invalid token: %w", domain.ErrBadParamInput)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("userid", u.ID.Hex()))

	u.IsEmailConfirmed = true
	u.ConfirmEmailToken = ""
	u.UpdatedAt = now.Truncate(time.Millisecond).UTC()

	if err = ac.userRepo.Update(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return ac.claims(u, now), nil
}

// newToken returns random token sent to the user and its hash kept in storage
func newToken() (string, string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("can't generate token: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	token := hex.EncodeToString(b)
	return token, hashToken(token), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func generateHash(pass string) (string, error) {
	result, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(result), nil
}
