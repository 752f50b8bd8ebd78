package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/freemodule/backend/internal/app/models"
	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/logger"
	"github.com/freemodule/backend/internal/pkg/sanitize"
	"github.com/freemodule/backend/internal/pkg/validation"
)

// profileStore is the slice of the user repository the user service needs.
type profileStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, name, email *string) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (*models.User, error)
}

// noteFileLister reports the stored files of a user's notes.
type noteFileLister interface {
	GetFileURLsByUserID(ctx context.Context, userID int64) ([]string, error)
}

// UserService handles profile reads, updates and account deletion.
type UserService struct {
	userRepo    profileStore
	noteFiles   noteFileLister
	files       fileStore
	emailDomain string
}

// NewUserService creates a new user service instance
func NewUserService(userRepo profileStore, noteFiles noteFileLister, files fileStore, emailDomain string) *UserService {
	return &UserService{
		userRepo:    userRepo,
		noteFiles:   noteFiles,
		files:       files,
		emailDomain: emailDomain,
	}
}

// GetProfile returns the caller's own profile.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateProfile applies the provided fields to the caller's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	name := sanitize.StripPtr(req.Name)
	email := sanitize.StripPtr(req.Email)
	if email != nil {
		lowered := strings.ToLower(*email)
		email = &lowered
	}

	if name == nil && email == nil {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	details := map[string]string{}
	if name != nil && !validation.IsValidName(*name) {
		details["name"] = fmt.Sprintf("name must be at least %d characters", validation.NameMinLength)
	}
	if email != nil {
		if !validation.IsValidEmail(*email) {
			details["email"] = "email address is not valid"
		} else if !validation.IsInstitutionalEmail(*email, s.emailDomain) {
			details["email"] = fmt.Sprintf("email must end with %s", s.emailDomain)
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("profile validation failed", details)
	}

	user, err := s.userRepo.UpdateUser(ctx, userID, name, email)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// DeleteAccount removes the caller's account. Owned rows go with it by
// cascade; the stored files of the caller's notes are collected up front and
// removed best-effort once the row delete has committed.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	fileURLs, err := s.noteFiles.GetFileURLsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, fileURL := range fileURLs {
		if cleanupErr := s.files.Delete(fileURL); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Str("file_url", fileURL).Msg("Failed to remove note file of deleted account")
		}
	}

	resp := toUserResponse(user)
	return &resp, nil
}
