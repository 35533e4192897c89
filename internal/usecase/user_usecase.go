package usecase

import (
	"context"

	"ecoconnect/internal/domain/entity"
)

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Username  string   `json:"username" validate:"required,min=3,max=80"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Role      string   `json:"role"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput is the result of a successful registration or login.
type AuthOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// UserUsecase covers account registration and login.
type UserUsecase interface {
	// Register creates a new user account and returns it with a signed token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and returns the user with a signed token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
