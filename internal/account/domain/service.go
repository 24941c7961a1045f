package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type RegisterRequest struct {
	Email    string
	Password string
	FullName string
	Tel      string
	Adresse  string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate enumerates the updatable profile fields. A nil field is
// left untouched; unknown request keys never reach the database.
type ProfileUpdate struct {
	Email           *string
	FullName        *string
	Tel             *string
	Adresse         *string
	MatriculeFiscal *string
	Image           *string
	Logo            *string
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	GetByID(ctx context.Context, id snowflake.ID) (User, error)
	ChangePassword(ctx context.Context, userID snowflake.ID, newPassword string) error
	UpdateProfile(ctx context.Context, userID snowflake.ID, update ProfileUpdate) (User, error)
	DeleteAccount(ctx context.Context, userID snowflake.ID) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

var (
	ErrNotFound           = errors.New("user_not_found")
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrPasswordTooShort   = errors.New("password_too_short")
	ErrInvalidResetToken  = errors.New("invalid_reset_token")
	ErrEmptyUpdate        = errors.New("empty_update")
)
