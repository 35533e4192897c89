package impl

import (
	"context"
	"log/slog"
	"time"

	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	"ecoconnect/internal/domain/repository"
	"ecoconnect/internal/domain/service"
	"ecoconnect/internal/errors"
	"ecoconnect/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService creates a new user account service instance.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new account and returns it with a signed access token.
// The default role is household.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	role := entity.RoleHousehold
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid role: " + input.Role)
		}
	}

	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The store maps unique constraint hits on username and email.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// Login verifies credentials and returns the user with a signed access
// token. Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}
