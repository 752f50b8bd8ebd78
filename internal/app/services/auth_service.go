package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/freemodule/backend/internal/app/models"
	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/auth"
	"github.com/freemodule/backend/internal/pkg/logger"
	"github.com/freemodule/backend/internal/pkg/sanitize"
	"github.com/freemodule/backend/internal/pkg/validation"
)

// userStore is the slice of the user repository the auth service needs.
type userStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// tokenIssuer signs access tokens for authenticated users.
type tokenIssuer interface {
	GenerateToken(userID int64, email string) (string, error)
}

// AuthService handles signup and login.
type AuthService struct {
	userRepo    userStore
	jwtService  tokenIssuer
	emailDomain string
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo userStore, jwtService tokenIssuer, emailDomain string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		emailDomain: emailDomain,
	}
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// validateRegistration checks the signup payload, collecting every field
// problem so the client sees them all at once.
func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	details := map[string]string{}
	if !validation.IsValidName(req.Name) {
		details["name"] = fmt.Sprintf("name must be at least %d characters", validation.NameMinLength)
	}
	if !validation.IsValidEmail(req.Email) {
		details["email"] = "email address is not valid"
	} else if !validation.IsInstitutionalEmail(req.Email, s.emailDomain) {
		details["email"] = fmt.Sprintf("email must end with %s", s.emailDomain)
	}
	if !validation.IsValidPassword(req.Password) {
		details["password"] = fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength)
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("registration validation failed", details)
	}
	return nil
}

// Register creates a new account and returns a signed token with the user.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Name = sanitize.Strip(req.Name)
	// Addresses are stored lowercase so case variants resolve to one account.
	req.Email = strings.ToLower(sanitize.Strip(req.Email))

	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token after signup")
		return nil, err
	}

	logger.Info().Int64("user_id", user.ID).Msg("User registered")
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

// Login verifies credentials and returns a signed token with the user. A
// wrong password and an unknown email produce the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(sanitize.Strip(req.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token at login")
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}
