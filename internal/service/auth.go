package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/auth"
	"github.com/yourname/wellnesstracker/internal/config"
	"github.com/yourname/wellnesstracker/internal/store"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var ErrInvalidCredentials = errors.New("invalid credentials")

func ValidateLoginRequest(data *internal.LoginData) error {
	return validate.Struct(data)
}

func ValidateSignupRequest(data *internal.SignupData) error {
	return validate.Struct(data)
}

// Login verifies the password against the stored hash and issues a token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func Login(ctx context.Context, users store.UserRepository, cfg *config.Config, data internal.LoginData) (*internal.AuthResponse, error) {
	email := normalizeEmail(data.Email)
	rec, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(rec.PasswordHash, data.Password) {
		return nil, ErrInvalidCredentials
	}
	token, err := auth.SignToken([]byte(cfg.JWTSecret), rec.ID, rec.Email, tokenTTL(cfg))
	if err != nil {
		return nil, err
	}
	return &internal.AuthResponse{
		Token: token,
		User:  internal.User{ID: rec.ID, Email: rec.Email},
	}, nil
}

// Signup registers a new user and logs them straight in. Duplicate emails
// surface store.ErrDuplicateEmail.
func Signup(ctx context.Context, users store.UserRepository, cfg *config.Config, data internal.SignupData) (*internal.AuthResponse, error) {
	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}
	rec := &internal.UserRecord{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(data.Email),
		PasswordHash: hash,
	}
	if err := users.CreateUser(ctx, rec); err != nil {
		return nil, err
	}
	token, err := auth.SignToken([]byte(cfg.JWTSecret), rec.ID, rec.Email, tokenTTL(cfg))
	if err != nil {
		return nil, err
	}
	return &internal.AuthResponse{
		Token: token,
		User:  internal.User{ID: rec.ID, Email: rec.Email},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func tokenTTL(cfg *config.Config) time.Duration {
	return time.Duration(cfg.TokenTTLHours) * time.Hour
}
